package dto

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Pagination bounds. Out-of-range values are clamped, never rejected, so a
// sloppy client still gets a well-formed page.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// hexColorPattern matches a 6-digit hex color, case-insensitive, e.g. #1A2b3C.
var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ListQuery carries the shared pagination and sorting parameters of list
// endpoints. Sort fields are a closed enum; unknown fields are rejected at
// binding time while limit/offset are normalized afterwards.
type ListQuery struct {
	Limit   int    `form:"limit,default=50" json:"limit"`
	Offset  int    `form:"offset,default=0" json:"offset"`
	SortBy  string `form:"sort_by,default=created_at" binding:"omitempty,oneof=created_at updated_at due_date priority title" json:"sort_by"`
	SortDir string `form:"sort_dir,default=DESC" binding:"omitempty,oneof=ASC DESC" json:"sort_dir"`
}

// Normalize clamps limit to [1,MaxLimit] and offset to >= 0, applying
// defaults when unset. Call after a successful bind.
func (q *ListQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.SortBy == "" {
		q.SortBy = "created_at"
	}
	if q.SortDir == "" {
		q.SortDir = "DESC"
	}
}

// OrderClause renders the sort parameters as a SQL ORDER BY expression.
// Both parts are validated against closed enums at binding time, so the
// result is safe to interpolate.
func (q ListQuery) OrderClause() string {
	return fmt.Sprintf("%s %s", q.SortBy, q.SortDir)
}

// validHexColor is the "hexcolor6" binding rule: exactly #RRGGBB,
// case-insensitive. The stdlib "hexcolor" rule also admits the 3-digit
// shorthand, which the API does not accept.
func validHexColor(fl validator.FieldLevel) bool {
	return hexColorPattern.MatchString(fl.Field().String())
}

// RegisterValidators installs the custom binding rules on gin's validator
// engine and makes validation errors report json field names instead of Go
// struct field names. Called once from router setup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine type %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return v.RegisterValidation("hexcolor6", validHexColor)
}
