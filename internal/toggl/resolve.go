package toggl

import "strings"

// MatchProject resolves a user-supplied name to a project. The
// tie-break is deterministic: first case-insensitive exact match wins,
// otherwise the first case-insensitive substring match, otherwise nil.
// Duplicate names resolve to whichever the API listed first.
func MatchProject(projects []Project, name string) *Project {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	for i := range projects {
		if strings.ToLower(projects[i].Name) == needle {
			return &projects[i]
		}
	}
	for i := range projects {
		if strings.Contains(strings.ToLower(projects[i].Name), needle) {
			return &projects[i]
		}
	}
	return nil
}

// ProjectNames returns the project names in API order, for guidance
// messages when a name fails to resolve.
func ProjectNames(projects []Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}
