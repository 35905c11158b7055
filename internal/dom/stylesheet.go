package dom

import (
	"strconv"
	"strings"
	"sync"
)

const classPrefix = "fct-"

type ruleset struct {
	name  string
	decls []StyleDecl
}

// StyleSheet accumulates generated classes. Registering the same declaration
// list twice returns the same class name and emits the rule body once, so a
// style shared by many fragments costs a single rule. Safe for concurrent use.
type StyleSheet struct {
	mu    sync.Mutex
	names map[string]string
	rules []ruleset
}

// NewStyleSheet creates an empty StyleSheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{names: make(map[string]string)}
}

// RegisterClass returns the class name for the given declaration list,
// generating and recording it on first use.
func (s *StyleSheet) RegisterClass(decls ...StyleDecl) string {
	key := serializeStyles(decls)

	s.mu.Lock()
	defer s.mu.Unlock()

	if name, ok := s.names[key]; ok {
		return name
	}

	name := classPrefix + strconv.Itoa(len(s.rules)+1)
	s.names[key] = name

	copied := make([]StyleDecl, len(decls))
	copy(copied, decls)
	s.rules = append(s.rules, ruleset{name: name, decls: copied})
	return name
}

// Len returns the number of registered rules.
func (s *StyleSheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}

// CSS renders every registered rule in registration order.
func (s *StyleSheet) CSS() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	for _, rule := range s.rules {
		b.WriteByte('.')
		b.WriteString(rule.name)
		b.WriteString(" { ")
		b.WriteString(serializeStyles(rule.decls))
		b.WriteString("; }\n")
	}
	return b.String()
}
