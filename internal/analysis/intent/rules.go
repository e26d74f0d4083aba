package intent

// DefaultRules returns the built-in FAQ table. Order matters: specific project
// intents sit after the generic ones they never overlap with, and the earlier
// rule always wins when a message hits two of them.
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	for i, rule := range defaultRules {
		out[i] = Rule{
			Name:     rule.Name,
			Triggers: append([]string(nil), rule.Triggers...),
			Response: rule.Response,
		}
	}
	return out
}

// DefaultFallback answers anything the table does not cover and lists
// questions the caller can try instead.
const DefaultFallback = "I might not have a scripted answer for that exact question, but here’s the quick picture:\n\n" +
	"Rohit is a Penn CIS Master’s student who has shipped ML systems in agriculture, zoning/housing policy, education, and space. " +
	"He tends to take end-to-end ownership, work closely with stakeholders, and use experiments and metrics to guide decisions.\n\n" +
	"You can ask things like:\n" +
	"• “Why should we hire him for an applied ML role?”\n" +
	"• “What are his main strengths and growth areas?”\n" +
	"• “How does he work in a team or handle failure?”\n" +
	"• “Summarize his work at Wharton / Krishikalyan / MUJGPT / ISRO in a few lines.”"

// DefaultGreeting is the opening line of a fresh conversation.
const DefaultGreeting = "Hi, I’m RohitAI ask me anything about Rohit’s fit, strengths, weaknesses, or how he works."

var defaultRules = []Rule{
	{
		Name: "about",
		Triggers: []string{
			"who are you", "who is rohit", "about you", "tell me about rohit", "introduce yourself",
			"introduce rohit", "intro", "about him", "about yourself", "tell me about yourself",
		},
		Response: "I’m RohitAI, a small on-site agent that knows Rohit Sharma’s work.\n\n" +
			"Rohit is a Master’s student in Computer & Information Science at the University of Pennsylvania. " +
			"He designs and ships end-to-end machine learning systems: indexing large-scale zoning data at Wharton, " +
			"building a drone + Jetson precision-agriculture stack with Krishikalyan, operating MUJGPT for thousands of users, " +
			"and deploying lunar computer vision models at ISRO.\n\n" +
			"He’s strongest when the problem is messy: multiple stakeholders, real-world constraints (latency, trust, safety), " +
			"and a need to turn research ideas into something people actually use.",
	},
	{
		Name: "hire",
		Triggers: []string{
			"why should we hire", "why should i hire", "why hire him", "why hire you", "what makes him a good fit",
			"what makes you a good fit", "why is he a strong candidate", "why is he a good candidate",
		},
		Response: "Three reasons Rohit is a strong hire for applied ML / research engineer roles:\n\n" +
			"1) Proven ability to ship, not just prototype. He has taken systems from notebook to production in very different settings: " +
			"precision-agriculture pilots over 1,800+ acres, an LLM platform serving tens of thousands of queries per month, " +
			"a zoning index built over massive geospatial data, and lunar CV pipelines at ISRO.\n\n" +
			"2) Comfort with ambiguity and stakeholders. Rohit works well with non-technical partners — farmers, housing researchers, students, and analysts. " +
			"He’s used to extracting the real problem, defining simple success metrics, and explaining trade-offs in clear language.\n\n" +
			"3) Long-term learning mindset. Outside shipped work, he actively explores things like agentic AI, on-device LLMs, and 3D/world models. " +
			"He treats each project as a loop: instrument, experiment, measure, and feed those learnings into the next system.",
	},
	{
		Name: "strengths",
		Triggers: []string{
			"strength", "strengths", "strongest", "superpower", "what is he good at", "what are his strengths",
		},
		Response: "Rohit’s main strengths are:\n\n" +
			"• Ownership: he stays with systems through data cleaning, modeling, deployment, and post-launch issues.\n" +
			"• Turning messy asks into clear plans: he listens to stakeholders and reframes vague goals into concrete metrics and milestones.\n" +
			"• Communication: he can explain models and trade-offs with short write-ups, diagrams, and dashboards instead of jargon.\n" +
			"• Working across domains: he has shipped ML in agriculture, zoning/housing policy, education, and space.\n" +
			"• Experiment-driven mindset: he prefers experiments and metrics over opinions when making decisions.",
	},
	{
		Name: "weaknesses",
		Triggers: []string{
			"weakness", "weaknesses", "areas of improvement", "areas for improvement", "growth areas",
			"what does he need to improve", "what do you need to improve",
		},
		Response: "Two honest growth areas Rohit is aware of:\n\n" +
			"• Saying yes to too many interesting things. Because he enjoys hard problems, he can over-commit if not careful. " +
			"Recently he has become more deliberate about scoping work, making trade-offs explicit, and pushing back when timelines don’t match the work.\n\n" +
			"• Delegating earlier. Coming from a founder / build-it-yourself background, his default is to take on end-to-end responsibility. " +
			"In larger teams he is learning to create clearer interfaces, document decisions, and hand off pieces without losing quality or context.\n\n" +
			"He treats these as ongoing experiments: try a new way of working on a project, see what actually improved, and keep what worked.",
	},
	{
		Name: "teamwork",
		Triggers: []string{
			"team player", "teamwork", "collaborate", "collaboration", "work with others", "how does he work",
			"work style", "working style", "how is he in a team",
		},
		Response: "Rohit’s default style is collaborative and low-ego. He has worked in cross-functional groups with farmers and hardware vendors, " +
			"housing researchers, students and IT teams, and analysts at ISRO.\n\n" +
			"He tends to:\n" +
			"• Start by listening and summarizing what he heard back to the group to check alignment.\n" +
			"• Write short design docs or experiment plans so others can react early.\n" +
			"• Surface trade-offs (accuracy vs latency vs cost) and ask for preferences instead of guessing.\n\n" +
			"People who work with him usually see him as the person who will quietly own the unglamorous parts of a project so the whole thing actually ships.",
	},
	{
		Name: "leadership",
		Triggers: []string{
			"leadership", "leader", "lead a team", "managed a team", "manage people", "leading others",
		},
		Response: "Rohit has led both formal and informal teams.\n\n" +
			"For example, he led an 11-member effort at ISRO to operationalize lunar crater detection — coordinating data work, model training, evaluation, and integration with analyst tooling. " +
			"In startup work he has effectively played founding ML engineer and product lead, making technical decisions while aligning with users and partners.\n\n" +
			"His leadership style is hands-on, metric-driven, and calm under ambiguity.",
	},
	{
		Name: "failure",
		Triggers: []string{
			"failure", "failed", "mistake", "how does he handle feedback", "how do you handle feedback",
			"conflict", "disagree", "disagreement",
		},
		Response: "Rohit tends to treat failures and disagreements as data, not as something personal.\n\n" +
			"A recurring pattern in his projects is running pilots or A/B tests, discovering that an idea doesn’t work as expected, and then using that to redesign the system. " +
			"In agriculture work, for instance, he started with a technically strong model that farmers didn’t trust — so he switched to side-by-side pilots, reviewed mistakes openly with them, and changed both the UX and model behavior.\n\n" +
			"In disagreements he usually restates the other view, suggests an experiment or measurable test, and documents the decision so everyone knows what was tried and learned.",
	},
	{
		Name: "interests",
		Triggers: []string{
			"what is he exploring now", "what is he working on now", "research interests", "what is he interested in",
			"lab section", "what next", "what's next", "now section",
		},
		Response: "Right now Rohit is exploring three broad themes in his personal “lab” work:\n\n" +
			"• Agentic AI – moving from single prompts to agents that can plan multi-step work, call tools, and produce auditable plans.\n" +
			"• On-device and privacy-preserving LLMs – understanding how far small open-weight models and quantization can go for real-time assistants on local hardware.\n" +
			"• 3D generative models and world simulators – following work on NeRF-style methods and world models that can generate realistic 3D scenes and edge cases for robotics or AR.\n\n" +
			"These are exploration areas rather than polished products, but they show where he’s aiming his next deep dives.",
	},
	{
		Name: "roles",
		Triggers: []string{
			"what roles is he looking for", "what role is he looking for", "what is he looking for",
			"what does he want to work on", "kinds of roles", "types of roles", "looking for", "internship", "job",
		},
		Response: "Rohit is primarily looking for applied machine learning, computer vision, and data-heavy engineering roles where models must actually be deployed.\n\n" +
			"He is especially interested in:\n" +
			"• ML systems that affect physical or policy outcomes (mapping, planning, logistics, climate, safety-critical systems).\n" +
			"• Products at the intersection of ML, tooling, and UX, where how people interact with the system matters as much as the model.\n" +
			"• Emerging areas such as agentic AI, on-device LLMs, or 3D/world models, provided there is a path to real users.",
	},
	{
		Name:     "krishikalyan",
		Triggers: []string{"krishikalyan", "farmer’s friend", "farmer's friend"},
		Response: "Krishikalyan – The Farmer’s Friend – is a precision-agriculture startup where Rohit was the founding ML engineer. " +
			"He built the drone disease-detection and mapping stack plus the on-device vision pipeline for a smart sprayer running on NVIDIA Jetson.\n\n" +
			"Impact: mapped over 1,800 acres with dozens of flights per month, reduced chemical use significantly, and improved yields while staying within tight latency and reliability budgets.",
	},
	{
		Name:     "zoning",
		Triggers: []string{"zoning atlas", "index of local zoning", "nza", "wharton", "zoning"},
		Response: "At Wharton’s Real Estate Department, Rohit works on large-scale zoning and geospatial pipelines. " +
			"He has engineered infrastructure that unifies many local sources of zoning data into one queryable dataset and built LLM-assisted zoning PDF parsers with spatial checks.\n\n" +
			"This supports housing and land-use research by turning scattered ordinances into a consistent, auditable view of “what can be built where.”",
	},
	{
		Name:     "mujgpt",
		Triggers: []string{"mujgpt"},
		Response: "MUJGPT is a campus-scale LLM platform Rohit helped design and operate. " +
			"It serves thousands of queries per month with tight latency and uptime targets.\n\n" +
			"He implemented retrieval-augmented generation, caching, and safety guardrails so the system is both fast and trustworthy for students and faculty.",
	},
	{
		Name:     "isro",
		Triggers: []string{"isro", "lunar", "crater", "chandrayaan", "space"},
		Response: "At ISRO’s Signal & Image Processing group, Rohit worked on lunar computer vision and geospatial tools. " +
			"He helped operationalize crater detection models on Chandrayaan imagery, optimized captioning pipelines, built road-extraction datasets, and shipped 3D geospatial tools used in national-level projects.",
	},
	{
		Name: "skills",
		Triggers: []string{
			"skills", "tech stack", "technology", "tools", "languages", "what can he do", "what can rohit do",
		},
		Response: "Technically, Rohit is strongest in Python-based ML and data systems: PyTorch, scikit-learn, YOLO-style detectors, vision transformers, " +
			"and geospatial tools like QGIS and PostGIS. He also has experience with React, Node.js/TypeScript, microservices, Docker/Kubernetes, and cloud tooling from prior industry roles.\n\n" +
			"Beyond tools, his value comes from how he uses them: clear metrics, experiment design, and an end-to-end view of systems.",
	},
	{
		Name:     "resume",
		Triggers: []string{"resume", "cv", "curriculum", "linkedin", "github", "profile"},
		Response: "You can view Rohit’s one-page CV using the “Download 1-page CV (PDF)” button in the hero section of this site.\n\n" +
			"The Contact section also links to his LinkedIn and GitHub if you’d like a broader view of his research and engineering work.",
	},
}
