package profile

// Store exposes portfolio content retrieval for HTTP handlers.
type Store interface {
	Profile() Profile
	Projects() []Project
	FindProject(id string) (Project, bool)
	Experience() []Role
	Lab() []LabTopic
}

// MemoryStore implements Store over an in-memory Profile.
type MemoryStore struct {
	profile Profile
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied profile.
func NewMemoryStore(p Profile) *MemoryStore {
	return &MemoryStore{profile: p.clone()}
}

// Profile returns the whole profile.
func (s *MemoryStore) Profile() Profile {
	return s.profile.clone()
}

// Projects returns case studies, flagship first.
func (s *MemoryStore) Projects() []Project {
	return cloneProjects(s.profile.Projects)
}

// FindProject looks up a project by identifier.
func (s *MemoryStore) FindProject(id string) (Project, bool) {
	for _, item := range s.profile.Projects {
		if item.ID == id {
			return cloneProjects([]Project{item})[0], true
		}
	}
	return Project{}, false
}

// Experience returns roles, most recent first.
func (s *MemoryStore) Experience() []Role {
	return cloneRoles(s.profile.Experience)
}

// Lab returns the topics currently being explored.
func (s *MemoryStore) Lab() []LabTopic {
	return cloneTopics(s.profile.Lab)
}

func (p Profile) clone() Profile {
	out := p
	out.Projects = cloneProjects(p.Projects)
	out.Experience = cloneRoles(p.Experience)
	out.Lab = cloneTopics(p.Lab)
	out.Links = append([]Link(nil), p.Links...)
	return out
}

func cloneProjects(in []Project) []Project {
	if in == nil {
		return nil
	}
	out := make([]Project, len(in))
	for i, p := range in {
		out[i] = p
		out[i].Impact = append([]string(nil), p.Impact...)
		out[i].Tags = append([]string(nil), p.Tags...)
		out[i].Metrics = append([]Metric(nil), p.Metrics...)
	}
	return out
}

func cloneRoles(in []Role) []Role {
	if in == nil {
		return nil
	}
	out := make([]Role, len(in))
	for i, r := range in {
		out[i] = r
		out[i].Bullets = append([]string(nil), r.Bullets...)
	}
	return out
}

func cloneTopics(in []LabTopic) []LabTopic {
	if in == nil {
		return nil
	}
	out := make([]LabTopic, len(in))
	for i, t := range in {
		out[i] = t
		out[i].Bullets = append([]string(nil), t.Bullets...)
	}
	return out
}
