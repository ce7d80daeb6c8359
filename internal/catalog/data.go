package catalog

import "github.com/mverral/umbra/internal/domain"

// defaultThemes is the shared eight-week arc. Prompt templates may use the
// {function} placeholder.
var defaultThemes = []domain.WeekTheme{
	{
		Week:  1,
		Title: "Meeting the Shadow",
		Focus: "Recognition",
		Goal:  "Notice when your inferior function is active without judging it",
		Prompts: []domain.ReflectionPrompt{
			{ID: "w1-noticed", Template: "When did you notice {function} showing up this week?"},
			{ID: "w1-feeling", Template: "What did it feel like in your body when {function} was active?"},
			{ID: "w1-avoid", Template: "What situations did you avoid that would have required {function}?"},
		},
		Milestones: []string{
			"Caught the shadow in the act at least once",
			"Logged five exercises",
		},
	},
	{
		Week:  2,
		Title: "Triggers and Stress",
		Focus: "Awareness",
		Goal:  "Map the situations that push you into your shadow",
		Prompts: []domain.ReflectionPrompt{
			{ID: "w2-trigger", Template: "Which trigger most reliably sent you into a {function} grip this week?"},
			{ID: "w2-pattern", Template: "What pattern do you fall into when stressed?"},
		},
		Milestones: []string{
			"Named at least two personal triggers",
			"Connected one stress episode to the shadow",
		},
	},
	{
		Week:  3,
		Title: "Small Doses",
		Focus: "Exposure",
		Goal:  "Practice the shadow function deliberately in low-stakes settings",
		Prompts: []domain.ReflectionPrompt{
			{ID: "w3-easy", Template: "Which low-stakes use of {function} felt easiest?"},
			{ID: "w3-hard", Template: "Where did deliberate practice feel forced or draining?"},
		},
		Milestones: []string{
			"Completed an exercise outside your comfort zone",
			"Practiced on three separate days",
		},
	},
	{
		Week:  4,
		Title: "The Grip",
		Focus: "De-escalation",
		Goal:  "Recognize grip episodes early and recover faster",
		Prompts: []domain.ReflectionPrompt{
			{ID: "w4-grip", Template: "Describe a moment you were gripped by {function}. What pulled you out?"},
			{ID: "w4-recover", Template: "What recovery ritual worked best this week?"},
		},
		Milestones: []string{
			"Shortened one grip episode deliberately",
			"Identified your earliest warning sign",
		},
	},
	{
		Week:  5,
		Title: "Borrowed Strengths",
		Focus: "Reframing",
		Goal:  "See the shadow as a resource rather than a liability",
		Prompts: []domain.ReflectionPrompt{
			{ID: "w5-gift", Template: "What has {function} given you that your dominant function cannot?"},
			{ID: "w5-admire", Template: "Think of someone who leads with your shadow function. What do you admire in them?"},
		},
		Milestones: []string{
			"Reframed one weakness as an undeveloped strength",
			"Asked someone who leads with your shadow how they experience it",
		},
	},
	{
		Week:  6,
		Title: "Integration Under Load",
		Focus: "Resilience",
		Goal:  "Keep access to the shadow function when pressure rises",
		Prompts: []domain.ReflectionPrompt{
			{ID: "w6-load", Template: "When pressure rose this week, did {function} stay available to you?"},
			{ID: "w6-anchor", Template: "Which anchor practice held up under real stress?"},
		},
		Milestones: []string{
			"Used the shadow function during a genuinely stressful moment",
			"Maintained the daily practice streak",
		},
	},
	{
		Week:  7,
		Title: "Relationships",
		Focus: "Connection",
		Goal:  "Bring the developing function into how you relate to others",
		Prompts: []domain.ReflectionPrompt{
			{ID: "w7-others", Template: "How did practicing {function} change an interaction this week?"},
			{ID: "w7-feedback", Template: "What feedback did you receive about how you have changed?"},
		},
		Milestones: []string{
			"Used the shadow function in a conversation that mattered",
			"Shared the program with someone close to you",
		},
	},
	{
		Week:  8,
		Title: "Living the Whole Stack",
		Focus: "Integration",
		Goal:  "Fold the practice into ordinary life beyond the program",
		Prompts: []domain.ReflectionPrompt{
			{ID: "w8-change", Template: "What is durably different about your relationship with {function}?"},
			{ID: "w8-next", Template: "Which practices will you keep after the program ends?"},
			{ID: "w8-letter", Template: "Write a short letter to yourself at week one."},
		},
		Milestones: []string{
			"Chose two practices to continue indefinitely",
			"Completed the final reflection",
		},
	},
}

// defaultExercises is the built-in exercise catalogue, grouped by target
// function. Order within a function is the catalogue order used for tie
// breaking in recommendations.
var defaultExercises = []domain.Exercise{
	// Se — Extraverted Sensing
	{
		ID: "se-grounding-walk", Title: "Grounding Walk", TargetFunction: domain.Se,
		Difficulty: domain.DifficultyBeginner, Minutes: 15,
		Instructions: "Walk without headphones. Name five things you can see, four you can hear, three you can touch.",
		Benefits:     []string{"presence", "stress relief", "body awareness"},
		Tags:         []string{"outdoors", "mindfulness", "stress", "overthinking"},
	},
	{
		ID: "se-single-task-meal", Title: "Single-Task Meal", TargetFunction: domain.Se,
		Difficulty: domain.DifficultyBeginner, Minutes: 20,
		Instructions: "Eat one meal with no screen, book, or conversation. Attend only to taste and texture.",
		Benefits:     []string{"presence", "patience"},
		Tags:         []string{"mindfulness", "daily life", "rumination"},
	},
	{
		ID: "se-sensory-inventory", Title: "Sensory Inventory", TargetFunction: domain.Se,
		Difficulty: domain.DifficultyIntermediate, Minutes: 10,
		Instructions: "Three times today, stop and record exactly what your senses report, with no interpretation.",
		Benefits:     []string{"presence", "accuracy of perception"},
		Tags:         []string{"mindfulness", "journaling", "anxiety"},
	},
	{
		ID: "se-physical-skill", Title: "Physical Skill Session", TargetFunction: domain.Se,
		Difficulty: domain.DifficultyIntermediate, Minutes: 45,
		Instructions: "Practice a hands-on skill: cooking a new dish, a sport drill, an instrument. Stay with the doing, not the plan.",
		Benefits:     []string{"embodiment", "spontaneity", "confidence"},
		Tags:         []string{"skill", "movement", "perfectionism"},
	},
	{
		ID: "se-improvised-outing", Title: "Improvised Outing", TargetFunction: domain.Se,
		Difficulty: domain.DifficultyAdvanced, Minutes: 45,
		Instructions: "Leave the house with no destination. Decide each turn in the moment. No route planning.",
		Benefits:     []string{"spontaneity", "tolerance of uncertainty"},
		Tags:         []string{"outdoors", "control", "planning", "uncertainty"},
	},
	{
		ID: "se-speed-response", Title: "Speed Response Drill", TargetFunction: domain.Se,
		Difficulty: domain.DifficultyAdvanced, Minutes: 30,
		Instructions: "Join a fast, reactive activity (pickup game, improv, climbing) where deliberation costs you the moment.",
		Benefits:     []string{"reaction speed", "trust in instinct"},
		Tags:         []string{"movement", "pressure", "hesitation"},
	},

	// Si — Introverted Sensing
	{
		ID: "si-routine-anchor", Title: "Routine Anchor", TargetFunction: domain.Si,
		Difficulty: domain.DifficultyBeginner, Minutes: 10,
		Instructions: "Pick one small daily ritual and perform it at the same time each day this week.",
		Benefits:     []string{"stability", "follow-through"},
		Tags:         []string{"routine", "consistency", "scattered"},
	},
	{
		ID: "si-body-scan", Title: "Body Scan", TargetFunction: domain.Si,
		Difficulty: domain.DifficultyBeginner, Minutes: 15,
		Instructions: "Lie down and move attention slowly from feet to head, recording what you actually feel.",
		Benefits:     []string{"body awareness", "rest"},
		Tags:         []string{"mindfulness", "burnout", "stress"},
	},
	{
		ID: "si-detail-pass", Title: "Detail Pass", TargetFunction: domain.Si,
		Difficulty: domain.DifficultyIntermediate, Minutes: 25,
		Instructions: "Take a finished piece of your work and review it line by line for overlooked specifics.",
		Benefits:     []string{"thoroughness", "reliability"},
		Tags:         []string{"work", "detail", "careless mistakes"},
	},
	{
		ID: "si-memory-walk", Title: "Memory Walk", TargetFunction: domain.Si,
		Difficulty: domain.DifficultyIntermediate, Minutes: 20,
		Instructions: "Revisit a meaningful place and write down what is the same and what has changed since you were last there.",
		Benefits:     []string{"continuity", "gratitude"},
		Tags:         []string{"journaling", "reflection", "restlessness"},
	},
	{
		ID: "si-maintenance-hour", Title: "Maintenance Hour", TargetFunction: domain.Si,
		Difficulty: domain.DifficultyAdvanced, Minutes: 45,
		Instructions: "Spend a full session on deferred upkeep: finances, files, repairs. Finish what you open.",
		Benefits:     []string{"follow-through", "order", "calm"},
		Tags:         []string{"admin", "avoidance", "novelty seeking"},
	},
	{
		ID: "si-tradition-build", Title: "Build a Tradition", TargetFunction: domain.Si,
		Difficulty: domain.DifficultyAdvanced, Minutes: 30,
		Instructions: "Design a small recurring tradition for yourself or your household and run its first occurrence.",
		Benefits:     []string{"stability", "belonging"},
		Tags:         []string{"routine", "relationships", "rootlessness"},
	},

	// Ne — Extraverted Intuition
	{
		ID: "ne-twenty-uses", Title: "Twenty Uses", TargetFunction: domain.Ne,
		Difficulty: domain.DifficultyBeginner, Minutes: 10,
		Instructions: "Pick an ordinary object and list twenty uses for it. Do not stop at ten.",
		Benefits:     []string{"flexibility", "idea generation"},
		Tags:         []string{"creativity", "rigidity", "play"},
	},
	{
		ID: "ne-what-if-journal", Title: "What-If Journal", TargetFunction: domain.Ne,
		Difficulty: domain.DifficultyBeginner, Minutes: 15,
		Instructions: "Write ten what-if questions about your current situation without answering any of them.",
		Benefits:     []string{"openness", "optimism"},
		Tags:         []string{"journaling", "stuck", "tunnel vision"},
	},
	{
		ID: "ne-cross-domain", Title: "Cross-Domain Borrow", TargetFunction: domain.Ne,
		Difficulty: domain.DifficultyIntermediate, Minutes: 30,
		Instructions: "Take a problem you face and steal an approach from an unrelated field. Sketch how it would apply.",
		Benefits:     []string{"idea generation", "perspective"},
		Tags:         []string{"work", "creativity", "stuck"},
	},
	{
		ID: "ne-yes-and-day", Title: "Yes-And Day", TargetFunction: domain.Ne,
		Difficulty: domain.DifficultyIntermediate, Minutes: 20,
		Instructions: "For one day, respond to suggestions with 'yes, and…' before any objection. Note what opens up.",
		Benefits:     []string{"openness", "collaboration"},
		Tags:         []string{"relationships", "control", "criticism"},
	},
	{
		ID: "ne-possibility-map", Title: "Possibility Map", TargetFunction: domain.Ne,
		Difficulty: domain.DifficultyAdvanced, Minutes: 40,
		Instructions: "Map five genuinely different futures for a decision you are facing, each with a first step.",
		Benefits:     []string{"perspective", "tolerance of uncertainty"},
		Tags:         []string{"planning", "anxiety", "decision"},
	},
	{
		ID: "ne-stranger-thread", Title: "Follow the Thread", TargetFunction: domain.Ne,
		Difficulty: domain.DifficultyAdvanced, Minutes: 45,
		Instructions: "Start a conversation with someone outside your circle and follow their interests wherever they lead.",
		Benefits:     []string{"curiosity", "connection"},
		Tags:         []string{"social", "comfort zone", "routine"},
	},

	// Ni — Introverted Intuition
	{
		ID: "ni-quiet-sit", Title: "Quiet Sit", TargetFunction: domain.Ni,
		Difficulty: domain.DifficultyBeginner, Minutes: 15,
		Instructions: "Sit with a single question and no input. Let answers surface instead of forcing them.",
		Benefits:     []string{"insight", "calm"},
		Tags:         []string{"mindfulness", "noise", "busyness"},
	},
	{
		ID: "ni-pattern-log", Title: "Pattern Log", TargetFunction: domain.Ni,
		Difficulty: domain.DifficultyBeginner, Minutes: 10,
		Instructions: "At day's end, write one pattern you noticed repeating across unrelated events.",
		Benefits:     []string{"pattern recognition", "reflection"},
		Tags:         []string{"journaling", "detail overload"},
	},
	{
		ID: "ni-five-year-letter", Title: "Five-Year Letter", TargetFunction: domain.Ni,
		Difficulty: domain.DifficultyIntermediate, Minutes: 30,
		Instructions: "Write a letter from yourself five years ahead describing how today's choices played out.",
		Benefits:     []string{"long-range vision", "meaning"},
		Tags:         []string{"journaling", "short-termism", "drift"},
	},
	{
		ID: "ni-one-theme", Title: "One Theme Distillation", TargetFunction: domain.Ni,
		Difficulty: domain.DifficultyIntermediate, Minutes: 20,
		Instructions: "Reduce a messy situation to a single sentence naming what it is really about.",
		Benefits:     []string{"clarity", "focus"},
		Tags:         []string{"work", "overwhelm", "detail"},
	},
	{
		ID: "ni-symbol-walk", Title: "Symbol Walk", TargetFunction: domain.Ni,
		Difficulty: domain.DifficultyAdvanced, Minutes: 40,
		Instructions: "Walk slowly and let one image you encounter stand for your current life question. Unpack it in writing afterwards.",
		Benefits:     []string{"insight", "imagination"},
		Tags:         []string{"outdoors", "stuck", "meaning"},
	},
	{
		ID: "ni-strategy-retreat", Title: "Strategy Retreat", TargetFunction: domain.Ni,
		Difficulty: domain.DifficultyAdvanced, Minutes: 45,
		Instructions: "Block an uninterrupted session to ask where your present course leads in ten years, and what that implies now.",
		Benefits:     []string{"long-range vision", "conviction"},
		Tags:         []string{"planning", "reactivity", "firefighting"},
	},

	// Te — Extraverted Thinking
	{
		ID: "te-tiny-deadline", Title: "Tiny Deadline", TargetFunction: domain.Te,
		Difficulty: domain.DifficultyBeginner, Minutes: 15,
		Instructions: "Pick one lingering task, set a 15-minute timer, and ship whatever exists when it rings.",
		Benefits:     []string{"decisiveness", "completion"},
		Tags:         []string{"work", "perfectionism", "procrastination"},
	},
	{
		ID: "te-visible-list", Title: "Visible List", TargetFunction: domain.Te,
		Difficulty: domain.DifficultyBeginner, Minutes: 10,
		Instructions: "Externalize today's intentions as a written, ordered list. Cross items off physically.",
		Benefits:     []string{"structure", "momentum"},
		Tags:         []string{"planning", "scattered", "overwhelm"},
	},
	{
		ID: "te-metric-pick", Title: "Pick One Metric", TargetFunction: domain.Te,
		Difficulty: domain.DifficultyIntermediate, Minutes: 20,
		Instructions: "Choose one measurable indicator for a goal you care about and record its current value.",
		Benefits:     []string{"objectivity", "accountability"},
		Tags:         []string{"goals", "vagueness", "drift"},
	},
	{
		ID: "te-delegate-one", Title: "Delegate One Thing", TargetFunction: domain.Te,
		Difficulty: domain.DifficultyIntermediate, Minutes: 25,
		Instructions: "Hand one task to someone else with a clear definition of done, and let them do it their way.",
		Benefits:     []string{"leadership", "trust"},
		Tags:         []string{"work", "control", "overload"},
	},
	{
		ID: "te-hard-call", Title: "Make the Hard Call", TargetFunction: domain.Te,
		Difficulty: domain.DifficultyAdvanced, Minutes: 30,
		Instructions: "Take a decision you have deferred, pick by explicit criteria, announce it, and schedule the first step.",
		Benefits:     []string{"decisiveness", "confidence"},
		Tags:         []string{"decision", "avoidance", "conflict"},
	},
	{
		ID: "te-system-audit", Title: "System Audit", TargetFunction: domain.Te,
		Difficulty: domain.DifficultyAdvanced, Minutes: 45,
		Instructions: "Audit one recurring mess in your life, design a three-step system for it, and run step one today.",
		Benefits:     []string{"structure", "efficiency"},
		Tags:         []string{"organization", "chaos", "repetition"},
	},

	// Ti — Introverted Thinking
	{
		ID: "ti-why-ladder", Title: "Why Ladder", TargetFunction: domain.Ti,
		Difficulty: domain.DifficultyBeginner, Minutes: 10,
		Instructions: "Take one belief you repeated this week and ask why five times, writing each answer.",
		Benefits:     []string{"clarity", "independent judgment"},
		Tags:         []string{"journaling", "borrowed opinions"},
	},
	{
		ID: "ti-define-terms", Title: "Define Your Terms", TargetFunction: domain.Ti,
		Difficulty: domain.DifficultyBeginner, Minutes: 15,
		Instructions: "Pick a word you use loosely (success, respect, lazy) and write your own precise definition.",
		Benefits:     []string{"precision", "self-knowledge"},
		Tags:         []string{"language", "vagueness"},
	},
	{
		ID: "ti-steelman", Title: "Steelman the Other Side", TargetFunction: domain.Ti,
		Difficulty: domain.DifficultyIntermediate, Minutes: 25,
		Instructions: "Write the strongest honest case for a position you reject, without strawmanning.",
		Benefits:     []string{"fairness", "rigor"},
		Tags:         []string{"conflict", "criticism", "debate"},
	},
	{
		ID: "ti-mechanism-sketch", Title: "Mechanism Sketch", TargetFunction: domain.Ti,
		Difficulty: domain.DifficultyIntermediate, Minutes: 30,
		Instructions: "Pick something you use daily and sketch how it actually works until you find the gap in your model.",
		Benefits:     []string{"understanding", "humility"},
		Tags:         []string{"curiosity", "assumptions"},
	},
	{
		ID: "ti-inconsistency-hunt", Title: "Inconsistency Hunt", TargetFunction: domain.Ti,
		Difficulty: domain.DifficultyAdvanced, Minutes: 30,
		Instructions: "Find one place where two of your own stated principles conflict. Resolve it or revise one.",
		Benefits:     []string{"integrity", "rigor"},
		Tags:         []string{"values", "blind spots"},
	},
	{
		ID: "ti-first-principles", Title: "First-Principles Rebuild", TargetFunction: domain.Ti,
		Difficulty: domain.DifficultyAdvanced, Minutes: 45,
		Instructions: "Take a routine you inherited and re-derive it from scratch: what is it for, and is this the best design?",
		Benefits:     []string{"independent judgment", "design sense"},
		Tags:         []string{"routine", "convention", "work"},
	},

	// Fe — Extraverted Feeling
	{
		ID: "fe-check-in", Title: "Genuine Check-In", TargetFunction: domain.Fe,
		Difficulty: domain.DifficultyBeginner, Minutes: 10,
		Instructions: "Ask one person how they are doing and stay with the answer for three follow-up questions.",
		Benefits:     []string{"connection", "warmth"},
		Tags:         []string{"social", "relationships", "isolation"},
	},
	{
		ID: "fe-appreciation-note", Title: "Appreciation Note", TargetFunction: domain.Fe,
		Difficulty: domain.DifficultyBeginner, Minutes: 10,
		Instructions: "Send a short, specific note of appreciation to someone who will not expect it.",
		Benefits:     []string{"warmth", "belonging"},
		Tags:         []string{"relationships", "gratitude"},
	},
	{
		ID: "fe-room-read", Title: "Read the Room", TargetFunction: domain.Fe,
		Difficulty: domain.DifficultyIntermediate, Minutes: 20,
		Instructions: "In your next group setting, track the mood of the room for ten minutes before contributing.",
		Benefits:     []string{"attunement", "timing"},
		Tags:         []string{"social", "meetings", "bluntness"},
	},
	{
		ID: "fe-conflict-repair", Title: "Small Repair", TargetFunction: domain.Fe,
		Difficulty: domain.DifficultyIntermediate, Minutes: 25,
		Instructions: "Name one small friction you left unaddressed and make a repair attempt today.",
		Benefits:     []string{"harmony", "courage"},
		Tags:         []string{"conflict", "avoidance", "relationships"},
	},
	{
		ID: "fe-host-gathering", Title: "Host Something Small", TargetFunction: domain.Fe,
		Difficulty: domain.DifficultyAdvanced, Minutes: 45,
		Instructions: "Organize a small gathering and take responsibility for everyone feeling included.",
		Benefits:     []string{"belonging", "leadership"},
		Tags:         []string{"social", "initiative", "isolation"},
	},
	{
		ID: "fe-hard-conversation", Title: "The Hard Conversation", TargetFunction: domain.Fe,
		Difficulty: domain.DifficultyAdvanced, Minutes: 40,
		Instructions: "Hold a conversation you have postponed, leading with how the situation affects both of you.",
		Benefits:     []string{"honesty", "connection"},
		Tags:         []string{"conflict", "criticism", "avoidance"},
	},

	// Fi — Introverted Feeling
	{
		ID: "fi-values-list", Title: "Values Shortlist", TargetFunction: domain.Fi,
		Difficulty: domain.DifficultyBeginner, Minutes: 15,
		Instructions: "List ten things you value, then cut the list to three. Notice what the cutting feels like.",
		Benefits:     []string{"self-knowledge", "conviction"},
		Tags:         []string{"values", "journaling", "people pleasing"},
	},
	{
		ID: "fi-feeling-name", Title: "Name the Feeling", TargetFunction: domain.Fi,
		Difficulty: domain.DifficultyBeginner, Minutes: 10,
		Instructions: "Three times today, pause and name your current emotion with one precise word. No 'fine'.",
		Benefits:     []string{"emotional granularity", "honesty"},
		Tags:         []string{"mindfulness", "numbness", "stress"},
	},
	{
		ID: "fi-values-audit", Title: "Calendar Values Audit", TargetFunction: domain.Fi,
		Difficulty: domain.DifficultyIntermediate, Minutes: 30,
		Instructions: "Compare last week's calendar against your top three values. Where is the largest gap?",
		Benefits:     []string{"alignment", "integrity"},
		Tags:         []string{"values", "work", "drift"},
	},
	{
		ID: "fi-quiet-no", Title: "One Quiet No", TargetFunction: domain.Fi,
		Difficulty: domain.DifficultyIntermediate, Minutes: 15,
		Instructions: "Decline one request that conflicts with what matters to you, without over-explaining.",
		Benefits:     []string{"boundaries", "conviction"},
		Tags:         []string{"people pleasing", "boundaries", "resentment"},
	},
	{
		ID: "fi-grief-window", Title: "Grief Window", TargetFunction: domain.Fi,
		Difficulty: domain.DifficultyAdvanced, Minutes: 30,
		Instructions: "Set aside a protected half hour to sit with a loss or disappointment you have been outrunning.",
		Benefits:     []string{"depth", "self-compassion"},
		Tags:         []string{"avoidance", "busyness", "emotion"},
	},
	{
		ID: "fi-stand-alone", Title: "Stand Alone", TargetFunction: domain.Fi,
		Difficulty: domain.DifficultyAdvanced, Minutes: 20,
		Instructions: "State an unpopular personal position to someone whose approval you want, kindly and without retreat.",
		Benefits:     []string{"courage", "authenticity"},
		Tags:         []string{"conflict", "approval", "criticism"},
	},
}
