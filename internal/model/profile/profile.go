package profile

// Profile is the portfolio content the chat widget talks about.
type Profile struct {
	Name       string     `json:"name"`
	Headline   string     `json:"headline"`
	Roles      []string   `json:"roles"`
	CVPath     string     `json:"cvPath"`
	Links      []Link     `json:"links"`
	Projects   []Project  `json:"projects"`
	Experience []Role     `json:"experience"`
	Lab        []LabTopic `json:"lab"`
}

// Link is a contact channel.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Metric is a headline number shown next to a project.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Project captures one case study.
type Project struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Period   string   `json:"period"`
	Summary  string   `json:"summary"`
	Impact   []string `json:"impact"`
	Tags     []string `json:"tags"`
	Metrics  []Metric `json:"metrics"`
	Flagship bool     `json:"flagship,omitempty"`
}

// Role is one position in the experience timeline.
type Role struct {
	Org     string   `json:"org"`
	Title   string   `json:"title"`
	Period  string   `json:"period"`
	Detail  string   `json:"detail"`
	Bullets []string `json:"bullets"`
}

// LabTopic is an area currently being explored.
type LabTopic struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Bullets []string `json:"bullets"`
}

// Seed provides the content published on the portfolio site.
func Seed() Profile {
	return Profile{
		Name:     "Rohit Sharma",
		Headline: "Master’s student in Computer & Information Science at the University of Pennsylvania",
		Roles: []string{
			"Applied ML Engineer",
			"End-to-end Systems Builder",
			"Experiment-driven Researcher",
			"Product-minded Engineer",
		},
		CVPath: "/Rohit_Sharma_CV.pdf",
		Links: []Link{
			{Label: "Email", URL: "mailto:rohitshr57@gmail.com"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/rohit57"},
			{Label: "GitHub", URL: "https://github.com/rohitshr57"},
			{Label: "Google Scholar", URL: "https://scholar.google.com/citations?user=E12Lt7sAAAAJ&hl=en"},
		},
		Projects:   seedProjects(),
		Experience: seedExperience(),
		Lab:        seedLab(),
	}
}

func seedProjects() []Project {
	return []Project{
		{
			ID:       "krishikalyan",
			Name:     "Case Study · Krishikalyan field pilots",
			Role:     "Turning drone ML into something farmers actually trust",
			Period:   "Jul 2024 – Jul 2025 · Jaipur, India",
			Flagship: true,
			Summary:  "We weren’t just trying to detect disease; we needed farmers to believe the system enough to change how they spray. That shaped almost every technical and product decision.",
			Impact: []string{
				"Started with a lab-perfect model that farmers didn’t trust due to a few bad predictions; switched to running pilots side-by-side with their existing process and reviewing errors together in the field.",
				"Designed the on-device pipeline on NVIDIA Jetson around what operators actually see: clear “spray / don’t spray” cues, offline-first behavior, and explainable map overlays rather than raw confidence scores.",
				"Agreed with partners on a simple success metric (chemicals -40%, labor -50%, yield +15%) and iterated until we hit it, while keeping ~120 ms p95 latency and 99.9% SLO for 90+ flights/month.",
			},
			Tags: []string{"Stakeholder alignment", "On-field iteration", "Edge constraints", "Simple success metrics"},
			Metrics: []Metric{
				{Label: "Acres mapped", Value: "1,800+"},
				{Label: "Chemicals", Value: "-40%"},
				{Label: "Yield", Value: "+15%"},
			},
		},
		{
			ID:      "zoning",
			Name:    "Case Study · Index of Local Zoning",
			Role:    "Turning messy ordinances into one queryable system",
			Period:  "Aug 2025 – May 2027 · Wharton Real Estate",
			Summary: "Housing researchers didn’t need another model; they needed to ask clear questions like “where can we actually build housing?” and get defensible answers from data.",
			Impact: []string{
				"Started by interviewing researchers and policy collaborators to define the real questions (density, use, FAR, setbacks) and designed the zoning index backwards from those queries.",
				"Unified 1,200+ local sources (~12 TB) into AWS/PostGIS while keeping a clear audit trail so every number in the index could be traced back to a section, page, and ordinance snippet.",
				"Used LLMs for zoning PDFs but paired them with topology/CRS checks and manual review loops, trading raw automation for a ~40% accuracy boost and trust from domain experts.",
			},
			Tags: []string{"User interviews", "Data modeling", "LLM + human review", "Auditability"},
			Metrics: []Metric{
				{Label: "Sources unified", Value: "1,200+"},
				{Label: "Preprocessing", Value: "~65% faster"},
			},
		},
		{
			ID:      "mujgpt",
			Name:    "Case Study · MUJGPT reliability & safety",
			Role:    "Making an LLM platform feel instant and safe for a campus",
			Period:  "Jun 2024 – Jul 2025 · Manipal University Jaipur",
			Summary: "Students don’t care which model you use; they care if it feels instant, doesn’t break, and won’t leak their data. MUJGPT was about engineering around those expectations.",
			Impact: []string{
				"Instrumented the whole stack with latency, error, and safety metrics before “optimizing”, so changes were driven by dashboards instead of guesses.",
				"Cut p95 latency by 180 ms and token usage by 30% using RAG + CoT, Redis caching, and parallel API calls, while keeping ~220 ms latency and 99.5% uptime at ~25K queries/month.",
				"Implemented PII/toxicity guardrails, role-based access, and audit logs so faculty and IT were comfortable rolling it out to 2,100+ students and using it in real coursework.",
			},
			Tags: []string{"Reliability", "Observability", "Safety & guardrails", "A/B testing"},
			Metrics: []Metric{
				{Label: "Queries / month", Value: "~25K"},
				{Label: "Uptime", Value: "99.5%"},
			},
		},
		{
			ID:      "isro",
			Name:    "Case Study · Lunar CV & 3D tools",
			Role:    "Making computer vision usable for ISRO analysts",
			Period:  "Aug 2023 – May 2024 · ISRO, Ahmedabad",
			Summary: "For lunar and Earth observation work, the bar wasn’t just accuracy; it was throughput, reliability, and tools that analysts actually wanted to use.",
			Impact: []string{
				"Led an 11-member effort to operationalize lunar crater detection (YOLOv9 + ViT) at 94% accuracy on 540k images and ~180 images/s, reducing analyst review time by ~25%.",
				"Optimized Cartosat captioning with TorchScript and batching, achieving 3.2× throughput and +4% accuracy (≈91%).",
				"Built a 5 m ResourceSat-2 LISS-IV road dataset and benchmarked ResUNet vs SOTA CNNs, reaching 97.76% accuracy and shipping the first CNN-based road extraction pipeline.",
				"Delivered 3D geospatial tools in Java using Hexagon Luciad with tile caching, adopted in 3 national-level projects.",
			},
			Tags: []string{"YOLOv9 + ViT", "TorchScript", "LuciadLightspeed", "Dataset design"},
			Metrics: []Metric{
				{Label: "Crater accuracy", Value: "94%"},
				{Label: "Analyst time", Value: "-25%"},
			},
		},
	}
}

func seedExperience() []Role {
	return []Role{
		{
			Org:    "The Wharton School, University of Pennsylvania",
			Title:  "Research Assistant · Real Estate Department",
			Period: "Aug 2025 – May 2027 (expected)",
			Detail: "Building the Index of Local Zoning and LLM + geospatial pipelines for large-scale housing and land-use research.",
			Bullets: []string{
				"Engineered the Index of Local Zoning on AWS/PostGIS, unifying 1,200+ local sources (~12 TB) into a consistent dataset.",
				"Cut data preprocessing time by ~65% through better ETL design and spatial indexing.",
				"Built an LLM-based zoning PDF pipeline with topology/CRS checks that improved extraction accuracy by ~40%.",
			},
		},
		{
			Org:    "Krishikalyan – The Farmer’s Friend",
			Title:  "Founding Machine Learning Engineer",
			Period: "Jul 2024 – Jul 2025",
			Detail: "End-to-end ownership of ML, edge deployment, and field operations for a precision agriculture startup.",
			Bullets: []string{
				"Launched drone disease detection that mapped 1,800+ acres with 90+ flights/month and generated prescription maps for targeted spraying.",
				"Implemented the smart sprayer’s on-device vision pipeline on NVIDIA Jetson (camera → CNN → thresholded actuation) under tight compute and power budgets.",
				"Delivered INR 5M (~$60K) worth of pilots and measurable impact: chemicals -40%, labor -50%, and yield +15% with 120 ms p95 latency and 99.9% SLO over 90 days.",
			},
		},
		{
			Org:    "Manipal University Jaipur",
			Title:  "Machine Learning Engineer · MUJGPT",
			Period: "Jun 2024 – Jul 2025",
			Detail: "Designed and operated MUJGPT, an LLM platform for students and faculty with strong latency and safety guarantees.",
			Bullets: []string{
				"Served ~25K queries/month at ~220 ms latency and 99.5% uptime.",
				"Reduced p95 latency by 180 ms and token usage by 30% using RAG + Chain-of-Thought, Redis caching, and parallel API calls.",
				"Implemented PII and toxicity guardrails with role-based access and audit logs, adopted by 2,100+ students, with dashboards and A/B tests for UX improvements.",
			},
		},
		{
			Org:    "Indian Space Research Organization (ISRO)",
			Title:  "Machine Learning Engineer Intern · Signal & Image Processing",
			Period: "Aug 2023 – May 2024",
			Detail: "Lunar computer vision and geospatial tooling for Chandrayaan and Earth observation missions.",
			Bullets: []string{
				"Led an 11-member effort to operationalize lunar crater detection (YOLOv9 + ViT) at 94% accuracy on 540k images and ~180 images/s, reducing analyst review time by ~25%.",
				"Optimized Cartosat captioning with TorchScript and batching, achieving 3.2× throughput and +4% accuracy (≈91%).",
				"Created a 5 m ResourceSat-2 LISS-IV road dataset and benchmarked ResUNet vs SOTA CNNs, reaching 97.76% accuracy and establishing the first CNN-based road extraction pipeline.",
				"Shipped 3D geospatial tools in Java using Hexagon Luciad with tile caching, adopted in 3 national-level projects.",
			},
		},
	}
}

func seedLab() []LabTopic {
	return []LabTopic{
		{
			ID:    "agents",
			Label: "Agentic AI",
			Title: "Agentic AI that can actually run workflows",
			Body:  "I’m exploring how to move from single-shot prompts to agent systems that can plan, call tools, and coordinate multi-step work with humans in the loop.",
			Bullets: []string{
				"Designing small experiments where an agent breaks down a task, chooses tools (code, search, APIs), and reports back with an auditable plan instead of just an answer.",
				"Thinking about evaluation beyond “did it look smart?”, e.g. success rates, tool-call correctness, and how recoverable the system is when it makes a bad step.",
				"Studying emerging frameworks for agent orchestration and memory to see what’s real vs hype, and where they could safely plug into real products.",
			},
		},
		{
			ID:    "ondevice",
			Label: "On-device LLMs",
			Title: "On-device and privacy-preserving LLMs",
			Body:  "The world is moving toward smaller, faster models that can run locally on laptops, phones, and edge devices without sending everything to the cloud.",
			Bullets: []string{
				"Experimenting with open-weight small LLMs and quantization techniques to keep latency low enough for interactive use on consumer hardware.",
				"Exploring hybrid designs where sensitive data stays local, and only anonymized or compressed signals ever leave the device.",
				"Reading up on new compiler/runtime work (GGUF, GPU/CPU mixing, speculative decoding) to understand what’s coming for real-time assistants.",
			},
		},
		{
			ID:    "gen3d",
			Label: "3D & world models",
			Title: "3D generative models and learned world simulators",
			Body:  "I’m interested in how generative models can learn 3D structure and simple physics well enough to help with robotics, AR, and planning in complex environments.",
			Bullets: []string{
				"Following progress in NeRF-style and Gaussian-splatting models that can build editable 3D scenes from a handful of views.",
				"Exploring how world models could be used to cheaply generate edge cases for testing perception and control systems before real-world deployment.",
				"Looking at ways to connect 3D generative models with language and action so agents can not only imagine worlds, but also reason about them.",
			},
		},
	}
}
