package questionnaire

// CategoryName is the single top-level category of this deployment.
const CategoryName = "Equity & Inclusion Self-Assessment"

// Title is the display title used in the UI and on the generated report.
const Title = "Actionable Allyship Self-Assessment"

// Intro is shown above the questionnaire.
const Intro = "This confidential assessment aligns with the All In Action Framework. " +
	"It is designed to reveal your current allyship strengths and opportunities for growth."

// allyshipSections is the full questionnaire: ten behavioral themes, three
// statements each. Page marks the form page the section is presented on.
var allyshipSections = []Section{
	{
		Name: "Build your knowledge",
		Page: 1,
		Questions: []string{
			"I learn about people who are different to me.",
			"I invest time in learning about equity & inclusion.",
			"I leverage insights from Employee Resource Groups (or equivalent) to impact business outcomes.",
		},
	},
	{
		Name: "Explore & grow",
		Page: 1,
		Questions: []string{
			"I am aware of and challenge my own biases and assumptions.",
			"I seek feedback about the impact of my actions & behaviours on others.",
			"I take feedback seriously and course correct.",
		},
	},
	{
		Name: "Practise self-compassion",
		Page: 1,
		Questions: []string{
			"I accept that I will make mistakes.",
			"I see my mistakes as opportunities to listen, learn, and improve, without dwelling on them.",
			"If I unintentionally make a mistake, I apologise, correct myself and move on.",
		},
	},
	{
		Name: "Centre the experiences of others",
		Page: 1,
		Questions: []string{
			"I actively listen to the experiences of others without being judgmental or defensive.",
			"I believe others' experiences and challenge my own assumptions.",
			"In discussions, I intentionally hold back from sharing my view, until others have shared their own perspectives.",
		},
	},
	{
		Name: "Create safe spaces for dialogue",
		Page: 1,
		Questions: []string{
			"At the beginning of group discussions, I remind participants to give each other their full attention.",
			"I share my experiences with equity and inclusion to build trust and connection with others.",
			"I invite people to raise concerns, even if it feels uncomfortable.",
		},
	},
	{
		Name: "Amplify voices",
		Page: 2,
		Questions: []string{
			"When developing ideas or making decisions, I ask 'Whose perspective are we missing?'",
			"I advocate for individuals from marginalised groups when they're not in the room.",
			"I give credit to individuals whose voices are often overlooked or unheard.",
		},
	},
	{
		Name: "Speak out",
		Page: 2,
		Questions: []string{
			"I say something when I hear people make comments that are rooted in stereotype or assumption.",
			"If I notice someone is being talked over or dismissed, I draw attention to it.",
			"I challenge inequities and unfair practices when I witness them.",
		},
	},
	{
		Name: "Make equitable & inclusive decisions",
		Page: 2,
		Questions: []string{
			"I ensure diverse perspectives are included when developing products and services.",
			"I prioritise equity when making hiring, promotion and other critical people decisions.",
			"I evaluate and measure the outcomes of my decisions across different populations.",
		},
	},
	{
		Name: "Drive accountability",
		Page: 2,
		Questions: []string{
			"I establish equity & inclusion goals that tie to business performance.",
			"I hold all team members accountable for creating an inclusive environment.",
			"I reward equitable & inclusive behaviours.",
		},
	},
	{
		Name: "Create sustainable change",
		Page: 2,
		Questions: []string{
			"I use a data-driven approach to develop and evaluate policies.",
			"I elevate equity & inclusion when developing and executing strategic plans.",
			"I make equity & inclusion a priority when collaborating with others from different parts of the value chain.",
		},
	},
}

// Definition returns the static questionnaire grouped for presentation.
func Definition() []Group {
	return []Group{{Category: CategoryName, Sections: allyshipSections}}
}

// ScaleLegend returns the ordered rating labels for the configured scale.
// The four-point scale is the shipped default; the five-point variant adds
// "Always" at the top.
func ScaleLegend(maxRating int) []string {
	legend := []string{"Never", "Rarely", "Sometimes", "Often", "Always"}
	if maxRating < len(legend) {
		legend = legend[:maxRating]
	}
	return legend
}
