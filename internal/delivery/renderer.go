package delivery

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/program"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const defaultWisdom = "Rest is not a reward for work done, it's a requirement for work to come."

// Branding is the sender-facing copy that varies per deployment.
type Branding struct {
	Brand        string // e.g. "Harmonized Fitness"
	Signature    string // closing line above the brand
	ContactEmail string // optional; renders a "message your coach" button
}

// DefaultBranding is used when no branding is configured.
var DefaultBranding = Branding{
	Brand:     "Harmonized Fitness",
	Signature: "Your coach",
}

type accent struct {
	Color    htmltemplate.CSS
	Gradient htmltemplate.CSS
}

var (
	trainingAccent = accent{Color: "#CC5500", Gradient: "linear-gradient(135deg, #CC5500 0%, #A04400 100%)"}
	restAccent     = accent{Color: "#10B981", Gradient: "linear-gradient(135deg, #10B981 0%, #059669 100%)"}
)

// view is the data every template receives.
type view struct {
	Branding
	Title         string
	FullName      string
	Profile       domain.UserProfile
	Program       *domain.Program
	Day           int
	TotalDays     int
	Percent       int
	Training      *domain.TrainingDay
	Rest          *domain.RestDay
	Accent        accent
	DefaultWisdom string
}

// Renderer turns program days into email messages.
type Renderer struct {
	branding Branding
	html     *htmltemplate.Template
	text     *texttemplate.Template
}

// NewRenderer parses the embedded templates. Empty branding fields fall back
// to DefaultBranding.
func NewRenderer(b Branding) (*Renderer, error) {
	if b.Brand == "" {
		b.Brand = DefaultBranding.Brand
	}
	if b.Signature == "" {
		b.Signature = DefaultBranding.Signature
	}
	funcs := map[string]interface{}{
		"focus": FocusLabel,
		"stars": stars,
		"join":  func(items []string) string { return strings.Join(items, ", ") },
	}
	html, err := htmltemplate.New("html").Funcs(funcs).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.New("text").Funcs(funcs).ParseFS(templateFS, "templates/*.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Renderer{branding: b, html: html, text: text}, nil
}

// Welcome renders the day-1 message, which also introduces the program.
func (r *Renderer) Welcome(p *domain.Program) (domain.Message, error) {
	plan, ok := p.Day(1)
	if !ok {
		return domain.Message{}, fmt.Errorf("program %s has no day 1", p.ID)
	}
	v := r.view(p, plan)
	v.Title = "Welcome to Your " + r.branding.Brand + " Journey"
	v.Accent = trainingAccent
	subject := fmt.Sprintf("Your Personalized %d-Day %s Program is Here!", domain.ProgramDays, r.branding.Brand)
	return r.render(subject, "welcome", v)
}

// Day renders the message for day n (2-14 in normal delivery, though any
// day renders for previews).
func (r *Renderer) Day(p *domain.Program, n int) (domain.Message, error) {
	plan, ok := p.Day(n)
	if !ok {
		return domain.Message{}, fmt.Errorf("program %s has no day %d", p.ID, n)
	}
	v := r.view(p, plan)
	if plan.IsRestDay() {
		if plan.Rest == nil {
			return domain.Message{}, fmt.Errorf("day %d: rest day without content", n)
		}
		v.Title = fmt.Sprintf("Day %d - Recovery Day", n)
		v.Accent = restAccent
		return r.render(Subject(plan), "rest", v)
	}
	if plan.Training == nil {
		return domain.Message{}, fmt.Errorf("day %d: training day without content", n)
	}
	v.Title = fmt.Sprintf("Day %d - %s", n, FocusLabel(plan.Training.WorkoutFocus))
	v.Accent = trainingAccent
	return r.render(Subject(plan), "training", v)
}

func (r *Renderer) view(p *domain.Program, plan domain.DayPlan) view {
	return view{
		Branding:      r.branding,
		FullName:      firstNonEmpty(p.UserProfile.FullName, "Athlete"),
		Profile:       p.UserProfile,
		Program:       p,
		Day:           plan.DayNumber,
		TotalDays:     domain.ProgramDays,
		Percent:       program.PercentComplete(plan.DayNumber),
		Training:      plan.Training,
		Rest:          plan.Rest,
		DefaultWisdom: defaultWisdom,
	}
}

func (r *Renderer) render(subject, name string, v view) (domain.Message, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html.tmpl", v); err != nil {
		return domain.Message{}, fmt.Errorf("render %s html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt.tmpl", v); err != nil {
		return domain.Message{}, fmt.Errorf("render %s text: %w", name, err)
	}
	return domain.Message{
		Subject: subject,
		HTML:    html.String(),
		Text:    strings.TrimSpace(text.String()) + "\n",
	}, nil
}

// Subject is the subject line for a scheduled day.
func Subject(plan domain.DayPlan) string {
	if plan.IsRestDay() || plan.Training == nil {
		return fmt.Sprintf("Day %d: Recovery & Reflection", plan.DayNumber)
	}
	return fmt.Sprintf("Day %d: %s", plan.DayNumber, FocusLabel(plan.Training.WorkoutFocus))
}

// FocusLabel renders a focus id for headlines, e.g. "full_body_hiit" becomes
// "FULL BODY HIIT".
func FocusLabel(focus string) string {
	return strings.ToUpper(strings.ReplaceAll(focus, "_", " "))
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
