package chat

import "context"

// Context carries the dashboard's current filter selection into a query.
// Empty or "all" means no selection.
type Context struct {
	SelectedDepartment string `json:"selected_department"`
	SelectedEmployee   string `json:"selected_employee"`
}

// DepartmentSelected reports whether a concrete department is picked.
func (c Context) DepartmentSelected() bool {
	return c.SelectedDepartment != "" && c.SelectedDepartment != "all"
}

// EmployeeSelected reports whether a concrete employee is picked.
func (c Context) EmployeeSelected() bool {
	return c.SelectedEmployee != "" && c.SelectedEmployee != "all"
}

// Source identifies which path produced an answer.
type Source string

const (
	SourceLLM   Source = "llm"
	SourceLocal Source = "local"
)

type Answer struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Source   Source `json:"source"`
	// Note carries a user-visible remark, e.g. that AI completion was
	// unavailable and a templated answer was served instead.
	Note string `json:"note,omitempty"`
}

type Service interface {
	Ask(ctx context.Context, question string, chatCtx Context) (Answer, error)
}
