package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/utils"
)

// Field names an editable column of a transaction.
type Field int

const (
	FieldDate Field = iota + 1
	FieldComment
	FieldAmount
	FieldReconciled
)

var fieldNames = map[Field]string{
	FieldDate:       "date",
	FieldComment:    "comment",
	FieldAmount:     "amount",
	FieldReconciled: "reconciled",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Mirrored reports whether an edit of this field is copied to the other side
// of a transfer.
func (f Field) Mirrored() bool {
	return f == FieldDate || f == FieldComment || f == FieldAmount
}

// Fields lists the editable fields in display order.
func Fields() []Field {
	return []Field{FieldDate, FieldComment, FieldAmount, FieldReconciled}
}

func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s' (must be date, comment, amount or reconciled)", ErrUnknownField, s)
}

type fieldHandler func(ts *TransactionService, id int64, raw string) error

var fieldHandlers = map[Field]fieldHandler{
	FieldDate:       editDate,
	FieldComment:    editComment,
	FieldAmount:     editAmount,
	FieldReconciled: editReconciled,
}

// EditField parses raw for the given field and applies it through the
// matching setter, so transfer mirroring follows the field's rules.
func (ts *TransactionService) EditField(id int64, field Field, raw string) error {
	handler, ok := fieldHandlers[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return handler(ts, id, raw)
}

func editDate(ts *TransactionService, id int64, raw string) error {
	date, err := time.Parse(constants.DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid date '%s' (use YYYY-MM-DD): %w", raw, err)
	}
	return ts.SetDate(id, date)
}

func editComment(ts *TransactionService, id int64, raw string) error {
	return ts.SetComment(id, raw)
}

func editAmount(ts *TransactionService, id int64, raw string) error {
	amount, err := utils.ParseAmount(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return ts.SetAmount(id, amount)
}

func editReconciled(ts *TransactionService, id int64, raw string) error {
	flag, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid reconciled flag '%s' (use true or false): %w", raw, err)
	}
	return ts.SetReconciled(id, flag)
}
