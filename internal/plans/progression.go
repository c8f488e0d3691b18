package plans

import "fmt"

// TemplateCode can be one of:
//   - PUSH_A, PULL_A, LEGS_A (heavy focus)
//   - PUSH_B, PULL_B, LEGS_B (volume and variation)
type TemplateCode string

const (
	TemplatePushA TemplateCode = "PUSH_A"
	TemplatePullA TemplateCode = "PULL_A"
	TemplateLegsA TemplateCode = "LEGS_A"
	TemplatePushB TemplateCode = "PUSH_B"
	TemplatePullB TemplateCode = "PULL_B"
	TemplateLegsB TemplateCode = "LEGS_B"
)

// ProgressionWeeks is the fixed length of a generated program.
const ProgressionWeeks = 9

type TemplateExercise struct {
	Name          string `json:"name"`
	PrimaryMuscle string `json:"primaryMuscle"`
	Sets          int    `json:"sets"`
	Reps          string `json:"reps"`
	RIR           string `json:"rir"`
	Notes         string `json:"notes,omitempty"`
}

type WorkoutTemplate struct {
	Code      TemplateCode       `json:"code"`
	Label     string             `json:"label"`
	Focus     string             `json:"focus"`
	Exercises []TemplateExercise `json:"exercises"`
}

type PlanDay struct {
	DayLabel        string       `json:"dayLabel"`
	TemplateCode    TemplateCode `json:"templateCode"`
	ProgressionNote string       `json:"progressionNote"`
}

type WeekPlan struct {
	WeekIndex int       `json:"weekIndex"`
	WeekLabel string    `json:"weekLabel"`
	Days      []PlanDay `json:"days"`
}

var workoutTemplates = []WorkoutTemplate{
	{
		Code:  TemplatePushA,
		Label: "Push A (Chest/Shoulders/Triceps)",
		Focus: "Heavy pressing focus",
		Exercises: []TemplateExercise{
			{Name: "Barbell bench press", PrimaryMuscle: "Chest", Sets: 4, Reps: "6-8", RIR: "1-2 RIR", Notes: "Main compound"},
			{Name: "Incline dumbbell press", PrimaryMuscle: "Upper chest", Sets: 3, Reps: "8-10", RIR: "1-2 RIR"},
			{Name: "Overhead press", PrimaryMuscle: "Front delts", Sets: 4, Reps: "6-8", RIR: "1-2 RIR", Notes: "Standing or seated"},
			{Name: "Weighted dips", PrimaryMuscle: "Triceps/Chest", Sets: 3, Reps: "6-10", RIR: "1-2 RIR"},
			{Name: "Cable triceps extension", PrimaryMuscle: "Triceps", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
			{Name: "Lateral raises", PrimaryMuscle: "Side delts", Sets: 4, Reps: "12-15", RIR: "2-3 RIR"},
		},
	},
	{
		Code:  TemplatePullA,
		Label: "Pull A (Back/Biceps)",
		Focus: "Heavy pulling focus",
		Exercises: []TemplateExercise{
			{Name: "Romanian deadlift", PrimaryMuscle: "Lower back/Hamstrings", Sets: 4, Reps: "6-8", RIR: "1-2 RIR"},
			{Name: "Weighted pull-ups", PrimaryMuscle: "Lats", Sets: 4, Reps: "6-8", RIR: "1-2 RIR"},
			{Name: "Barbell row", PrimaryMuscle: "Mid back", Sets: 4, Reps: "8-10", RIR: "1-2 RIR"},
			{Name: "Machine row", PrimaryMuscle: "Lats", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
			{Name: "Face pulls", PrimaryMuscle: "Rear delts", Sets: 3, Reps: "12-15", RIR: "2-3 RIR"},
			{Name: "Barbell biceps curl", PrimaryMuscle: "Biceps", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
		},
	},
	{
		Code:  TemplateLegsA,
		Label: "Legs A (Full lower body)",
		Focus: "Heavy squat focus",
		Exercises: []TemplateExercise{
			{Name: "Back squat", PrimaryMuscle: "Quads", Sets: 4, Reps: "6-8", RIR: "1-2 RIR", Notes: "Main compound"},
			{Name: "Leg press", PrimaryMuscle: "Quads", Sets: 4, Reps: "8-12", RIR: "1-2 RIR"},
			{Name: "Dumbbell Romanian deadlift", PrimaryMuscle: "Hamstrings", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
			{Name: "Walking lunges", PrimaryMuscle: "Quads/Glutes", Sets: 3, Reps: "12-14", RIR: "2-3 RIR"},
			{Name: "Leg curl", PrimaryMuscle: "Hamstrings", Sets: 3, Reps: "12-15", RIR: "2-3 RIR"},
			{Name: "Calf raises", PrimaryMuscle: "Calves", Sets: 4, Reps: "15-20", RIR: "2-3 RIR"},
		},
	},
	{
		Code:  TemplatePushB,
		Label: "Push B (Chest/Shoulders/Triceps)",
		Focus: "More volume and angles",
		Exercises: []TemplateExercise{
			{Name: "Incline barbell press", PrimaryMuscle: "Upper chest", Sets: 4, Reps: "8-10", RIR: "1-2 RIR", Notes: "Angle variation"},
			{Name: "Dumbbell flyes", PrimaryMuscle: "Chest", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
			{Name: "Machine press", PrimaryMuscle: "Chest/Shoulders", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
			{Name: "Dumbbell lateral raises", PrimaryMuscle: "Side delts", Sets: 4, Reps: "12-15", RIR: "2-3 RIR"},
			{Name: "Front raises", PrimaryMuscle: "Front delts", Sets: 3, Reps: "12-15", RIR: "2-3 RIR"},
			{Name: "Bench triceps extension", PrimaryMuscle: "Triceps", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
			{Name: "Skull crushers", PrimaryMuscle: "Triceps", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
		},
	},
	{
		Code:  TemplatePullB,
		Label: "Pull B (Back/Biceps)",
		Focus: "More volume and variations",
		Exercises: []TemplateExercise{
			{Name: "Chest-supported row", PrimaryMuscle: "Lats", Sets: 4, Reps: "8-10", RIR: "2-3 RIR", Notes: "Back supported"},
			{Name: "Lat pulldown", PrimaryMuscle: "Lats", Sets: 4, Reps: "8-10", RIR: "2-3 RIR"},
			{Name: "One-arm dumbbell row", PrimaryMuscle: "Lats", Sets: 3, Reps: "10-12", RIR: "2-3 RIR", Notes: "Each side"},
			{Name: "Cable face pulls", PrimaryMuscle: "Rear delts", Sets: 3, Reps: "12-15", RIR: "2-3 RIR"},
			{Name: "Shrugs", PrimaryMuscle: "Traps", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
			{Name: "Dumbbell biceps curl", PrimaryMuscle: "Biceps", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
			{Name: "Hammer curl", PrimaryMuscle: "Biceps/Brachialis", Sets: 3, Reps: "10-12", RIR: "2-3 RIR"},
		},
	},
	{
		Code:  TemplateLegsB,
		Label: "Legs B (Unilateral and posterior chain)",
		Focus: "Unilateral and glute work",
		Exercises: []TemplateExercise{
			{Name: "Bulgarian split squat", PrimaryMuscle: "Quads/Glutes", Sets: 3, Reps: "10-12", RIR: "2-3 RIR", Notes: "Each leg"},
			{Name: "Hip thrust", PrimaryMuscle: "Glutes", Sets: 4, Reps: "8-12", RIR: "1-2 RIR"},
			{Name: "Romanian deadlift", PrimaryMuscle: "Hamstrings/Glutes", Sets: 3, Reps: "8-10", RIR: "2-3 RIR"},
			{Name: "Lying leg curl", PrimaryMuscle: "Hamstrings", Sets: 3, Reps: "12-15", RIR: "2-3 RIR"},
			{Name: "Leg extensions", PrimaryMuscle: "Quads", Sets: 3, Reps: "12-15", RIR: "2-3 RIR"},
			{Name: "Seated calf raises", PrimaryMuscle: "Calves", Sets: 4, Reps: "15-20", RIR: "2-3 RIR"},
			{Name: "Hip abduction machine", PrimaryMuscle: "Glutes", Sets: 3, Reps: "12-15", RIR: "2-3 RIR"},
		},
	},
}

// TemplateByCode looks a workout template up in the catalog.
func TemplateByCode(code TemplateCode) (WorkoutTemplate, bool) {
	for _, template := range workoutTemplates {
		if template.Code == code {
			return template, true
		}
	}
	return WorkoutTemplate{}, false
}

// Templates returns the full workout template catalog.
func Templates() []WorkoutTemplate {
	return workoutTemplates
}

// BuildWeekPlans generates the 9-week push/pull/legs progression for
// the given weekly availability and target intensity (1-10). The
// template pattern depends on the available days, the progression
// notes depend on the program phase and the intensity.
func BuildWeekPlans(daysPerWeek, intensity int) []WeekPlan {
	days := daysPerWeek
	if days < 1 {
		days = 1
	}
	if days > 6 {
		days = 6
	}

	var pattern []TemplateCode
	switch {
	case days <= 3:
		pattern = []TemplateCode{TemplatePushA, TemplatePullA, TemplateLegsA}
	case days == 4:
		pattern = []TemplateCode{TemplatePushA, TemplatePullA, TemplateLegsA, TemplatePushB}
	case days == 5:
		pattern = []TemplateCode{TemplatePushA, TemplatePullA, TemplateLegsA, TemplatePushB, TemplatePullB}
	default:
		pattern = []TemplateCode{TemplatePushA, TemplatePullA, TemplateLegsA, TemplatePushB, TemplatePullB, TemplateLegsB}
	}

	weekPlans := make([]WeekPlan, 0, ProgressionWeeks)
	for weekIndex := 0; weekIndex < ProgressionWeeks; weekIndex++ {
		note := progressionNote(weekIndex, intensity)

		weekDays := make([]PlanDay, 0, len(pattern))
		for dayIndex, templateCode := range pattern {
			weekDays = append(weekDays, PlanDay{
				DayLabel:        fmt.Sprintf("Day %d", dayIndex+1),
				TemplateCode:    templateCode,
				ProgressionNote: note,
			})
		}

		weekPlans = append(weekPlans, WeekPlan{
			WeekIndex: weekIndex,
			WeekLabel: fmt.Sprintf("Week %d", weekIndex+1),
			Days:      weekDays,
		})
	}

	return weekPlans
}

// progressionNote picks the coaching note for a program phase. The
// phases are weeks 1-3 (baseline), 4-6 (overload), 7 (deload) and
// 8-9 (rebuild).
func progressionNote(weekIndex, intensity int) string {
	isLowIntensity := intensity <= 5
	isHighIntensity := intensity >= 8

	if weekIndex < 3 {
		if isLowIntensity {
			return "Build technique and movement control. Focus on control and sustainability. Add reps gradually while keeping 2-3 RIR."
		}
		if isHighIntensity {
			return "Build technique and movement control. Add reps gradually while keeping 2-3 RIR. Keep the form tight but do not be afraid to push."
		}
		return "Build technique and movement control. Add reps gradually while keeping 2-3 RIR."
	}

	if weekIndex < 6 {
		if isLowIntensity {
			return "Keep the technique and slightly increase the weight (2-5%) or the difficulty while keeping 2-3 RIR. Prioritize control and sustainability."
		}
		if isHighIntensity {
			return "Keep the technique and slightly increase the weight (2-5%) or the difficulty while keeping 1-2 RIR. Push hard but without breaking technique."
		}
		return "Keep the technique and slightly increase the weight (2-5%) or the difficulty while keeping 1-2 RIR."
	}

	if weekIndex == 6 {
		if isLowIntensity {
			return "Deload week. Reduce the weight by ~20-30%, same reps, everything should feel easier. Ideal for recovery and consolidation."
		}
		if isHighIntensity {
			return "Deload week. Reduce the weight by ~20-30%, same reps, everything should feel easier. Use it to recharge without losing the habit."
		}
		return "Deload week. Reduce the weight by ~20-30%, same reps, everything should feel easier."
	}

	if isLowIntensity {
		return "Go back to the weights of weeks 4-6 and try to add 1-2 reps with perfect technique. Control and quality over maximum weight."
	}
	if isHighIntensity {
		return "Go back to the weights of weeks 4-6 and try to add 1-2 reps with perfect technique. Push to the limit but without compromising form."
	}
	return "Go back to the weights of weeks 4-6 and try to add 1-2 reps with perfect technique."
}
