package intake

// Scripted assistant messages and option sets, one entry per collecting
// step. Options are offered alongside the free-text input; both paths feed
// the same raw answer string.

const greetingMessage = "👋 Hi! I'm your AI Healthcare Assistant. I'll help you find the right healthcare provider based on your needs.\n\nWhat brings you here today?"

var greetingOptions = []string{
	"I need urgent care",
	"Looking for a specialist",
	"Routine checkup",
	"Mental health support",
}

const insuranceMessage = "Got it! To help you find in-network providers, what insurance do you have?"

var insuranceOptions = []string{
	"Excellus BCBS",
	"Fidelis Care",
	"MVP Health Care",
	"Medicaid",
	"Medicare",
	"No insurance",
}

const locationMessage = "Perfect! Where would you prefer to receive care?"

var locationOptions = []string{
	"Utica",
	"Rome",
	"Oneida",
	"New Hartford",
	"Anywhere in Oneida County",
}

const urgencyMessage = "When do you need to be seen?"

var urgencyOptions = []string{
	"Emergency - Right now",
	"Urgent - Today or tomorrow",
	"Soon - Within a week",
	"Routine - Flexible timing",
}

// Result preambles keyed by urgency bucket.
const (
	emergencyResultsMessage = "🚨 For emergency care, I recommend calling 911 or visiting these emergency rooms immediately:"
	urgentResultsMessage    = "⚡ Based on your needs, here are urgent care facilities and providers who can see you quickly:"
	routineResultsMessage   = "✨ Great! Here are the best matches for your needs:"

	noResultsMessage = "No providers found matching your criteria. Try adjusting your preferences."
)

const restartMessage = "Would you like to search for another provider?"

var restartOptions = []string{
	"Yes, start over",
	"No, I'm all set",
}
