package authz

import "gorm.io/gorm"

// ScopeColumns memetakan scope ke kolom/ekspresi SQL sebuah resource.
// Department: ekspresi dengan satu placeholder, mis. "department = ?" atau
// "user_id IN (SELECT id FROM users WHERE department = ?)".
type ScopeColumns struct {
	Department string
	Owner      string
}

// Apply membatasi query ke baris yang boleh dilihat scope.
func (s Scope) Apply(q *gorm.DB, cols ScopeColumns) *gorm.DB {
	switch s.Kind {
	case ScopeAll:
		return q
	case ScopeDepartment:
		return q.Where(cols.Department, s.Department)
	case ScopeSelf:
		return q.Where(cols.Owner+" = ?", s.PrincipalID)
	}
	return q.Where("1 = 0")
}
