package program

import "alcyxob/fitness-program/internal/domain"

// DefaultTables returns the built-in lookup rows. Every call builds fresh
// maps, so callers may overlay them freely.
func DefaultTables() Tables {
	return Tables{
		RestDays: []int{4, 7, 11, 14},

		Progression: map[domain.ExperienceLevel]Progression{
			domain.ExperienceBeginner:     {Week1: 0.7, Week2: 0.85},
			domain.ExperienceIntermediate: {Week1: 0.8, Week2: 0.95},
			domain.ExperienceAdvanced:     {Week1: 0.9, Week2: 1.0},
			domain.ExperienceExpert:       {Week1: 1.0, Week2: 1.1},
		},
		BaseDifficulty: map[domain.ExperienceLevel]int{
			domain.ExperienceBeginner:     2,
			domain.ExperienceIntermediate: 3,
			domain.ExperienceAdvanced:     4,
			domain.ExperienceExpert:       5,
		},
		TargetDifficulty: map[domain.ExperienceLevel]int{
			domain.ExperienceBeginner:     2,
			domain.ExperienceIntermediate: 3,
			domain.ExperienceAdvanced:     4,
			domain.ExperienceExpert:       5,
		},

		BaseReps: map[domain.ExperienceLevel]map[domain.Category]int{
			domain.ExperienceBeginner:     {domain.CategoryStrength: 8, domain.CategoryCardio: 20, domain.CategoryFlexibility: 30},
			domain.ExperienceIntermediate: {domain.CategoryStrength: 10, domain.CategoryCardio: 25, domain.CategoryFlexibility: 45},
			domain.ExperienceAdvanced:     {domain.CategoryStrength: 12, domain.CategoryCardio: 30, domain.CategoryFlexibility: 60},
			domain.ExperienceExpert:       {domain.CategoryStrength: 15, domain.CategoryCardio: 35, domain.CategoryFlexibility: 90},
		},
		BaseSets: map[domain.ExperienceLevel]int{
			domain.ExperienceBeginner:     2,
			domain.ExperienceIntermediate: 3,
			domain.ExperienceAdvanced:     3,
			domain.ExperienceExpert:       4,
		},

		GoalAdjustments: map[domain.Goal]GoalAdjustment{
			domain.GoalWeightLoss:       {Reps: 1.2, Sets: 1.1, RestSeconds: 30},
			domain.GoalMuscleBuilding:   {Reps: 1.0, Sets: 1.2, RestSeconds: 60},
			domain.GoalStrengthPower:    {Reps: 0.8, Sets: 1.3, RestSeconds: 90},
			domain.GoalMilitaryPrep:     {Reps: 1.1, Sets: 1.1, RestSeconds: 45},
			domain.GoalGluteEnhancement: {Reps: 1.1, Sets: 1.0, RestSeconds: 45},
			domain.GoalLevelUp:          {Reps: 1.3, Sets: 1.2, RestSeconds: 75},
		},
		GoalKeywords: map[domain.Goal][]string{
			domain.GoalWeightLoss:       {"cardio", "functional", "hiit"},
			domain.GoalMuscleBuilding:   {"strength", "hypertrophy"},
			domain.GoalStrengthPower:    {"strength", "power"},
			domain.GoalMilitaryPrep:     {"functional", "compound"},
			domain.GoalGluteEnhancement: {"lower", "glute", "posterior"},
			domain.GoalLevelUp:          {"advanced", "complex"},
		},
		FocusPatterns: map[domain.Goal][]string{
			domain.GoalWeightLoss:       {"full_body_hiit", "cardio_strength", "metabolic", "full_body_circuit"},
			domain.GoalMuscleBuilding:   {"upper_body", "lower_body", "push", "pull"},
			domain.GoalStrengthPower:    {"compound_strength", "power_development", "functional_strength", "core_stability"},
			domain.GoalMilitaryPrep:     {"combat_conditioning", "functional_fitness", "endurance_strength", "agility_power"},
			domain.GoalGluteEnhancement: {"lower_body_focus", "glute_activation", "posterior_chain", "functional_lower"},
			domain.GoalLevelUp:          {"sport_specific", "power_endurance", "advanced_strength", "performance_conditioning"},
		},
		FocusKeywords: map[string][]string{
			"full_body_hiit":      {"strength", "cardio", "functional"},
			"upper_body":          {"strength", "upper"},
			"lower_body":          {"strength", "lower"},
			"cardio_strength":     {"cardio", "strength"},
			"metabolic":           {"cardio", "functional"},
			"combat_conditioning": {"functional", "strength"},
			"glute_activation":    {"strength", "lower"},
		},
		DefaultKeywords: []string{"strength", "functional"},
		TempoNotes: map[domain.Goal]string{
			domain.GoalWeightLoss:       "Fast, explosive movements with minimal rest",
			domain.GoalMuscleBuilding:   "Controlled 2-1-2 tempo (2 sec down, 1 sec pause, 2 sec up)",
			domain.GoalStrengthPower:    "Explosive concentric, controlled eccentric",
			domain.GoalMilitaryPrep:     "Variable tempo based on tactical requirements",
			domain.GoalGluteEnhancement: "Slow, controlled with focus on muscle activation",
			domain.GoalLevelUp:          "Sport-specific tempo patterns",
		},
		DefaultTempo: "Controlled movement with focus on form",

		Durations: map[domain.WorkoutDuration]DurationRow{
			domain.Duration15to30: {ExerciseCount: 4, EstimatedMinutes: 25, Description: "Time-efficient, high-intensity sessions perfect for busy schedules."},
			domain.Duration30to45: {ExerciseCount: 6, EstimatedMinutes: 37, Description: "Balanced workout duration allowing for comprehensive training with adequate recovery."},
			domain.Duration45to60: {ExerciseCount: 8, EstimatedMinutes: 52, Description: "Extended sessions for thorough muscle development and skill refinement."},
			domain.Duration60Plus: {ExerciseCount: 10, EstimatedMinutes: 75, Description: "In-depth training sessions for maximum adaptation and performance gains."},
		},
		DefaultDuration: DurationRow{ExerciseCount: 5, EstimatedMinutes: 30, Description: "Sessions sized to fit your schedule."},

		EasierModifications: []string{"Reduce range of motion", "Use assisted version", "Decrease tempo"},
		HarderModifications: []string{"Add pause at bottom", "Increase tempo", "Add resistance"},

		RestDayContent: map[int]RestDayContent{
			4: {
				Title: "Active Recovery & Mobility",
				Focus: "Light movement and flexibility",
				Activities: []string{
					"10-15 minute gentle walk",
					"Full body stretching routine (15 min)",
					"Deep breathing exercises (5 min)",
					"Hydration focus: Extra 16oz water",
				},
				CoachingNotes:  "Recovery is where the magic happens. Your muscles are rebuilding stronger right now.",
				NutritionFocus: "Focus on anti-inflammatory foods: berries, leafy greens, fatty fish, and plenty of water.",
			},
			7: {
				Title: "Week 1 Recovery & Assessment",
				Focus: "Rest, recover, and reflect on progress",
				Activities: []string{
					"Complete rest from structured exercise",
					"Gentle yoga or meditation (20 min)",
					"Nutrition planning for Week 2",
					"Progress photos and measurements",
					"Journal about energy levels and mood",
				},
				CoachingNotes:  "Week 1 complete! You've shown up for yourself every day. That's what champions do.",
				NutritionFocus: "Reflect on your nutrition wins this week. Plan healthy meals for the week ahead.",
			},
			11: {
				Title: "Mid-Week Recovery Boost",
				Focus: "Prepare for final push",
				Activities: []string{
					"Light activity: leisurely bike ride or walk",
					"Foam rolling or self-massage (15 min)",
					"Meal prep for remaining days",
					"Extra sleep: aim for 8+ hours",
				},
				CoachingNotes:  "The final push is ahead. Use today to prepare mentally and physically for the home stretch.",
				NutritionFocus: "Prioritize protein today to support muscle recovery. Aim for 20-30g at each meal.",
			},
			14: {
				Title: "Program Completion & Planning",
				Focus: "Celebrate achievements and plan next steps",
				Activities: []string{
					"Final progress assessment",
					"Celebrate your commitment and progress!",
					"Plan your next fitness goals",
					"Schedule a consultation for continued guidance",
				},
				CoachingNotes:  "You did it! You committed to 14 days and followed through. This is just the beginning.",
				NutritionFocus: "Celebrate with a nutritious meal that makes you feel energized and proud of your progress.",
			},
		},

		Warmups: map[string][]string{
			"full_body_hiit": {
				"Jumping jacks - 30 seconds",
				"Arm circles - 20 forward, 20 backward",
				"Leg swings - 10 each direction",
				"Bodyweight squats - 10 reps",
				"High knees - 20 seconds",
			},
			"upper_body": {
				"Arm circles - 20 forward, 20 backward",
				"Shoulder rolls - 10 forward, 10 backward",
				"Cat-cow stretches - 10 reps",
				"Wall push-ups - 10 reps",
				"Torso twists - 10 each side",
			},
			"lower_body": {
				"Leg swings - 10 forward/back, 10 side to side each leg",
				"Bodyweight squats - 10 reps",
				"Lunges - 5 each leg",
				"Calf raises - 15 reps",
				"Hip circles - 10 each direction",
			},
		},
		DefaultWarmup: "full_body_hiit",
		WarmupNotes:   "Prepare your body for the workout ahead. Focus on controlled movements and gradual intensity increase.",
		Cooldown: []string{
			"Deep breathing - 1 minute",
			"Forward fold stretch - 30 seconds",
			"Downward dog - 30 seconds",
			"Child's pose - 45 seconds",
			"Gentle spinal twist - 30 seconds each side",
		},
		CooldownNotes:  "Allow your body to gradually return to resting state. Focus on deep breathing and gentle stretching.",
		RoutineMinutes: 5,

		GoalDescriptions: map[domain.Goal]string{
			domain.GoalWeightLoss:       "High-intensity fat-burning program designed to maximize calorie burn while preserving lean muscle mass.",
			domain.GoalMuscleBuilding:   "Progressive resistance training focused on hypertrophy and strength development across all major muscle groups.",
			domain.GoalStrengthPower:    "Military-style strength and power development using functional movements and compound exercises.",
			domain.GoalMilitaryPrep:     "Combat-ready conditioning program emphasizing functional fitness, endurance, and mental toughness.",
			domain.GoalGluteEnhancement: "Targeted lower body development with emphasis on glute activation, strength, and aesthetic enhancement.",
			domain.GoalLevelUp:          "Elite-level training protocol designed for advanced athletes seeking peak performance optimization.",
		},
		ProgressiveOverload: "Each week builds upon the previous with increased intensity and complexity",
		WeeklyMessages: map[int]string{
			1:  "Welcome to your transformation! Focus on learning proper form and listening to your body.",
			2:  "You're building momentum! Push yourself while maintaining excellent technique.",
			8:  "Week 2 begins - time to elevate your intensity and see what you're truly capable of!",
			10: "Final week push! Your body is adapting and getting stronger every day.",
		},
		DefaultWeeklyMessage: "Stay focused on your goals and trust the process.",
		GoalCoaching: map[domain.Goal]string{
			domain.GoalWeightLoss:       "Remember: consistency burns fat, intensity builds muscle. Stay hydrated!",
			domain.GoalMuscleBuilding:   "Focus on progressive overload. Each rep should be challenging but controlled.",
			domain.GoalStrengthPower:    "Power comes from perfect technique. Master the movement, then add intensity.",
			domain.GoalMilitaryPrep:     "Train like your mission depends on it. Mental toughness builds physical strength.",
			domain.GoalGluteEnhancement: "Mind-muscle connection is key. Feel every rep in your glutes.",
			domain.GoalLevelUp:          "Elite performance requires elite effort. Leave nothing in reserve.",
		},

		Nutrition: map[domain.Goal]domain.NutritionGuidance{
			domain.GoalWeightLoss: {
				Overview:       "Caloric deficit with high protein, moderate carbs, and healthy fats",
				DailyStructure: "3 meals + 1 snack, focus on whole foods and portion control",
				MacroTargets:   "Protein: 1g per lb bodyweight, Carbs: 0.8g per lb, Fat: 0.3g per lb",
				Timing:         "Eat protein within 30 minutes post-workout",
				Hydration:      "Half your bodyweight in ounces of water daily",
			},
			domain.GoalMuscleBuilding: {
				Overview:       "Caloric surplus with emphasis on protein and nutrient timing",
				DailyStructure: "3 main meals + 2-3 snacks, never skip post-workout nutrition",
				MacroTargets:   "Protein: 1.2g per lb bodyweight, Carbs: 1.5g per lb, Fat: 0.4g per lb",
				Timing:         "Protein and carbs within 45 minutes post-workout",
				Hydration:      "Half your bodyweight in ounces + 16oz per hour of training",
			},
			domain.GoalStrengthPower: {
				Overview:       "Balanced nutrition supporting intense training and recovery",
				DailyStructure: "Strategic carb timing around workouts, consistent protein",
				MacroTargets:   "Protein: 1g per lb bodyweight, Carbs: 1.2g per lb, Fat: 0.4g per lb",
				Timing:         "Carbs 1-2 hours pre-workout, protein immediately post-workout",
				Hydration:      "Consistent intake throughout day, extra during training sessions",
			},
			domain.GoalMilitaryPrep: {
				Overview:       "Field-ready nutrition focusing on sustained energy and mental clarity",
				DailyStructure: "Consistent meal timing, portable nutrition options",
				MacroTargets:   "Balanced macros with emphasis on sustained energy",
				Timing:         "Never train on empty stomach, refuel within 60 minutes post-training",
				Hydration:      "Aggressive hydration protocol - clear urine is the goal",
			},
			domain.GoalGluteEnhancement: {
				Overview:       "Muscle-building nutrition with foods supporting lower body development",
				DailyStructure: "Regular protein intake, complex carbs for energy",
				MacroTargets:   "Higher protein focus with adequate carbs for training fuel",
				Timing:         "Pre-workout carbs, post-workout protein for muscle synthesis",
				Hydration:      "Optimal hydration supports muscle fullness and definition",
			},
			domain.GoalLevelUp: {
				Overview:       "Precision nutrition for elite performance and recovery optimization",
				DailyStructure: "Periodized nutrition matching training phases",
				MacroTargets:   "Customized based on training blocks and performance goals",
				Timing:         "Strategic nutrient timing for performance and recovery",
				Hydration:      "Performance-based hydration with electrolyte consideration",
			},
		},

		FallbackGoal: domain.GoalMuscleBuilding,
	}
}
