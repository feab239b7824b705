package content

// Suggestion is a titled piece of advice.
type Suggestion struct {
	Title  string
	Detail string
}

var benefits = []Suggestion{
	{"Distraction", "By focusing on your body's movements, you can break the cycle of anxious thoughts and ground yourself in the present moment."},
	{"Endorphins", "Activities like running or dancing can boost endorphin levels, leading to a natural high that combats anxiety."},
	{"Breathing", "Practices like yoga emphasize breath control, which can help slow your heart rate and reduce the physical symptoms of panic."},
	{"Confidence", "Achieving small fitness goals can build self-esteem and empower you to face anxiety with greater resilience."},
}

var activities = []Suggestion{
	{"Walking or jogging", "A brisk walk in nature can be especially calming, as it combines physical movement with the soothing effects of the outdoors."},
	{"Yoga or stretching", "Focus on poses that open the chest and promote deep breathing, like the Cat-Cow stretch or Child's Pose."},
	{"Dancing", "Put on your favorite music and let loose. The combination of rhythm and movement can quickly lift your spirits."},
	{"Swimming", "The buoyancy of water can feel supportive and calming, while the repetitive strokes help focus the mind."},
	{"Cycling", "Whether on a stationary bike or outdoors, cycling can provide a sense of freedom and help clear mental fog."},
}

var tips = []Suggestion{
	{"Start small", "Even a short walk can help ease anxiety."},
	{"Find activities you enjoy", "You're more likely to keep doing them."},
	{"Incorporate movement into your day", "Take the stairs or stretch during breaks."},
	{"Listen to your body", "Avoid overexertion, especially when feeling anxious."},
	{"Set a regular schedule", "Consistency can help make physical activity a habit and provide structure to your day."},
	{"Track your progress", "Use a journal or app to note how you feel before and after activity, reinforcing the positive effects."},
	{"Find a buddy", "Exercising with a friend can provide accountability and make the experience more enjoyable."},
	{"Be kind to yourself", "If you're having a tough day, even a few minutes of movement is a win."},
}

// Benefits lists how movement helps during panic.
func Benefits() []Suggestion { return append([]Suggestion(nil), benefits...) }

// Activities lists suggested kinds of movement.
func Activities() []Suggestion { return append([]Suggestion(nil), activities...) }

// Tips lists advice for getting started.
func Tips() []Suggestion { return append([]Suggestion(nil), tips...) }
