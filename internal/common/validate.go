package common

import (
	"fmt"
	"reflect"
	"strings"
)

// preconditions collects argument violations for one operation so that every
// helper can reject bad input before touching the filesystem.
type preconditions struct {
	op         string
	violations []string
}

func expect(op string) *preconditions {
	return &preconditions{op: op}
}

func (p *preconditions) path(name, value string) *preconditions {
	if strings.TrimSpace(value) == "" {
		p.violations = append(p.violations, fmt.Sprintf("%s must be a non-empty path", name))
	}
	return p
}

func (p *preconditions) paths(name string, values []string) *preconditions {
	if values == nil {
		p.violations = append(p.violations, fmt.Sprintf("%s must be a list of paths", name))
		return p
	}
	for i, v := range values {
		p.path(fmt.Sprintf("%s[%d]", name, i), v)
	}
	return p
}

func (p *preconditions) notNil(name string, value any) *preconditions {
	if isNil(value) {
		p.violations = append(p.violations, fmt.Sprintf("%s must not be nil", name))
	}
	return p
}

func (p *preconditions) pointer(name string, value any) *preconditions {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		p.violations = append(p.violations, fmt.Sprintf("%s must be a non-nil pointer, got %T", name, value))
	}
	return p
}

func (p *preconditions) err() error {
	if len(p.violations) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, p.op, strings.Join(p.violations, "; "))
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
