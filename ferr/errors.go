// Package ferr provides structured, value-like errors for the Dogma engine.
// Errors never cross layers as panics — every failure the spec calls out
// (§6 "Error taxonomy", §7 "Error handling design") is represented as a
// *Error carrying a Code, a human message, and structured Meta describing
// the item/attribute/effect involved.
package ferr

import (
	"errors"
	"fmt"
)

// Code names one of the errors in spec.md §6's taxonomy.
type Code string

const (
	// CodeTypeFetch indicates the type database has no row for a type id.
	CodeTypeFetch Code = "type_fetch"
	// CodeAttrMetadata indicates an attribute id is unknown to the metadata table.
	CodeAttrMetadata Code = "attr_metadata"
	// CodeBaseValue indicates an attribute has neither a type value nor a default.
	CodeBaseValue Code = "base_value"
	// CodeUnexpectedDomain indicates a modifier's affectee_domain could not be resolved.
	CodeUnexpectedDomain Code = "unexpected_domain"
	// CodeUnknownAffecteeFilter indicates a modifier's affectee_filter is outside the enum.
	CodeUnknownAffecteeFilter Code = "unknown_affectee_filter"
	// CodeNoSuchAbility indicates a fighter-squad ability id is not in abilities_data.
	CodeNoSuchAbility Code = "no_such_ability"
	// CodeSlotTaken indicates an ordered module slot already holds an item.
	CodeSlotTaken Code = "slot_taken"
	// CodeYamlParsing indicates a modifierInfo YAML blob failed to parse.
	CodeYamlParsing Code = "yaml_parsing"
	// CodeRestrictionValidation indicates a fitting-restriction register rejected a fit.
	CodeRestrictionValidation Code = "restriction_validation"
	// CodeCascadeDepthExceeded indicates a publish cascade ran past the bus's
	// configured drain budget without settling.
	CodeCascadeDepthExceeded Code = "cascade_depth_exceeded"
	// CodeNotMember indicates an attempt to remove an item that is not
	// currently held by the container it was asked to be removed from.
	CodeNotMember Code = "not_member"
)

// Error is the concrete error type returned by every fallible Dogma
// engine operation. It is always returned as a value — never panicked —
// per spec.md §6's "value-like errors, never cross-layer control flow".
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "ferr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option configures an *Error at construction time.
type Option func(*Error)

// WithMeta attaches an arbitrary key/value to the error's metadata.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// WithItem attaches the item id the error occurred on.
func WithItem(item int64) Option { return WithMeta("item_id", item) }

// WithAttr attaches the attribute id the error occurred on.
func WithAttr(attr int64) Option { return WithMeta("attr_id", attr) }

// WithCause sets the wrapped cause.
func WithCause(cause error) Option {
	return func(e *Error) { e.Cause = cause }
}

// New creates an *Error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	e := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Newf creates an *Error with a formatted message.
func Newf(code Code, opts []Option, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...), opts...)
}

// CodeEquals reports whether err, or an error it wraps, is a *Error with
// the given code (found via errors.As).
func CodeEquals(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code == code
	}
	return false
}

// TypeFetchError reports that the type database has no row for typeID.
func TypeFetchError(typeID int64, opts ...Option) *Error {
	return New(CodeTypeFetch, fmt.Sprintf("no type with id %d", typeID), opts...)
}

// AttrMetadataError reports that attrID is unknown to the attribute metadata table.
func AttrMetadataError(attrID int64, opts ...Option) *Error {
	return New(CodeAttrMetadata, fmt.Sprintf("unknown attribute metadata for attr %d", attrID), opts...)
}

// BaseValueError reports that an attribute has no type value and no default.
func BaseValueError(attrID int64, opts ...Option) *Error {
	return New(CodeBaseValue, fmt.Sprintf("no base value for attr %d", attrID), opts...)
}

// UnexpectedDomainError reports that a modifier's affectee domain could not be resolved.
func UnexpectedDomainError(domain string, opts ...Option) *Error {
	return New(CodeUnexpectedDomain, fmt.Sprintf("cannot resolve domain %q in current context", domain), opts...)
}

// UnknownAffecteeFilterError reports a modifier whose affectee_filter is outside the enum.
func UnknownAffecteeFilterError(filter string, opts ...Option) *Error {
	return New(CodeUnknownAffecteeFilter, fmt.Sprintf("unknown affectee filter %q", filter), opts...)
}

// NoSuchAbilityError reports a fighter-squad ability id with no abilities_data entry.
func NoSuchAbilityError(abilityID int64, opts ...Option) *Error {
	return New(CodeNoSuchAbility, fmt.Sprintf("no ability %d on this type", abilityID), opts...)
}

// SlotTakenError reports an attempt to place an item in an occupied ordered slot.
func SlotTakenError(slot int, opts ...Option) *Error {
	return New(CodeSlotTaken, fmt.Sprintf("slot %d is already occupied", slot), opts...)
}

// YamlParsingError reports a modifierInfo YAML blob that failed to parse.
func YamlParsingError(cause error, opts ...Option) *Error {
	opts = append(opts, WithCause(cause))
	return New(CodeYamlParsing, "failed to parse modifierInfo", opts...)
}

// RestrictionValidationError reports a fitting-restriction register rejection.
func RestrictionValidationError(reason string, opts ...Option) *Error {
	return New(CodeRestrictionValidation, reason, opts...)
}

// CascadeDepthExceededError reports that a bus drain processed more than
// budget messages without settling, and was aborted to protect against a
// runaway handler-publish cascade.
func CascadeDepthExceededError(budget int, opts ...Option) *Error {
	return New(CodeCascadeDepthExceeded, fmt.Sprintf("publish cascade exceeded drain budget of %d messages", budget), opts...)
}

// NotMemberError reports an attempt to remove itemID from a container
// that does not currently hold it.
func NotMemberError(itemID int64, opts ...Option) *Error {
	return New(CodeNotMember, fmt.Sprintf("item %d is not a member of this container", itemID), opts...)
}
