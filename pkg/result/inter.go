package result

import "fmt"

// Tagged is implemented by every Result instantiation. It lets results of
// different type parameters be inspected through one set of functions.
type Tagged interface {
	// Tag returns the variant
	Tag() Tag
	// Payload returns the single value carried by the variant
	Payload() any
}

func TypeOf(r Tagged) Tag {
	return r.Tag()
}

func ValueOf(r Tagged) any {
	return r.Payload()
}

// ToStr renders r as "<tag>(<payload>)", e.g. "ok(5)" or "fail(bar)".
func ToStr(r Tagged) string {
	return fmt.Sprintf("%s(%v)", r.Tag(), r.Payload())
}

func IsOk(r Tagged) bool {
	return TypeOf(r) == TagOk
}

func IsFail(r Tagged) bool {
	return TypeOf(r) == TagFail
}
