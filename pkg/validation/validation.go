package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Level indicates which validation stage produced the result.
type Level string

const (
	LevelSchema    Level = "schema"
	LevelLayout    Level = "layout"
	LevelPlacement Level = "placement"
	LevelScene     Level = "scene"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding.
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	SpecPath    string   `json:"spec_path"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report is the complete validation output of one pipeline stage, or of
// several merged stages.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	result.ActualValue = encodableValue(result.ActualValue)
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	result.ActualValue = encodableValue(result.ActualValue)
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	result.ActualValue = encodableValue(result.ActualValue)
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// encodableValue returns v, or its fmt rendering when v holds a NaN or
// infinite float (alone or in an array or slice), which encoding/json
// rejects.
func encodableValue(v any) any {
	if v == nil {
		return nil
	}
	if hasNonFinite(reflect.ValueOf(v)) {
		return fmt.Sprint(v)
	}
	return v
}

func hasNonFinite(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return math.IsNaN(f) || math.IsInf(f, 0)
	case reflect.Array, reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			if hasNonFinite(rv.Index(i)) {
				return true
			}
		}
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			return hasNonFinite(rv.Elem())
		}
	}
	return false
}

// AddErr records err as an error result. A *ConfigError keeps its field and
// value; the path prefix locates the offending spec entry.
func (r *Report) AddErr(level Level, prefix string, err error) {
	res := Result{Level: level, Message: err.Error(), SpecPath: prefix}
	var ce *ConfigError
	if errors.As(err, &ce) {
		res.Message = ce.Reason
		res.ActualValue = ce.Value
		if ce.Field != "" {
			if prefix != "" {
				res.SpecPath = prefix + "." + ce.Field
			} else {
				res.SpecPath = ce.Field
			}
		}
	}
	r.AddError(res)
}

// Merge combines another report into this one. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Err returns nil for a valid report, otherwise an error wrapping
// ErrInvalidConfiguration that lists every error message.
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors)+1)
	errs = append(errs, ErrInvalidConfiguration)
	for _, e := range r.Errors {
		if e.SpecPath != "" {
			errs = append(errs, fmt.Errorf("%s: %s", e.SpecPath, e.Message))
		} else {
			errs = append(errs, errors.New(e.Message))
		}
	}
	return errors.Join(errs...)
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
