package validation

import (
	"errors"
	"strconv"
	"strings"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
)

const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountTooLow   = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// InvoiceInput is the raw, stringly-typed form submission.
type InvoiceInput struct {
	CustomerID string
	Amount     string
	Status     string
}

// InvoiceForm is the typed, constrained record produced on success.
type InvoiceForm struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

type FieldErrors map[string][]string

// FormErrors carries every field violation plus a summary message, for
// re-rendering a form with inline errors.
type FormErrors struct {
	Errors  FieldErrors `json:"errors"`
	Message string      `json:"message"`
}

func (e *FormErrors) Error() string {
	return e.Message
}

// ParseInvoiceForm validates in collecting mode: all field errors are
// gathered and returned together, never raised past the caller.
func ParseInvoiceForm(in InvoiceInput, message string) (InvoiceForm, *FormErrors) {
	fieldErrs := FieldErrors{}

	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		fieldErrs["customerId"] = append(fieldErrs["customerId"], MsgSelectCustomer)
	}

	cents, err := parseAmount(in.Amount)
	if err != nil {
		fieldErrs["amount"] = append(fieldErrs["amount"], MsgAmountTooLow)
	}

	status := strings.TrimSpace(in.Status)
	if status != models.InvoiceStatusPending && status != models.InvoiceStatusPaid {
		fieldErrs["status"] = append(fieldErrs["status"], MsgSelectStatus)
	}

	if len(fieldErrs) > 0 {
		return InvoiceForm{}, &FormErrors{Errors: fieldErrs, Message: message}
	}

	return InvoiceForm{CustomerID: customerID, AmountCents: cents, Status: status}, nil
}

// ParseInvoiceFormStrict validates in strict mode: the first violation is
// returned as an error and aborts the operation.
func ParseInvoiceFormStrict(in InvoiceInput) (InvoiceForm, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return InvoiceForm{}, errors.New(MsgSelectCustomer)
	}

	cents, err := parseAmount(in.Amount)
	if err != nil {
		return InvoiceForm{}, errors.New(MsgAmountTooLow)
	}

	status := strings.TrimSpace(in.Status)
	if status != models.InvoiceStatusPending && status != models.InvoiceStatusPaid {
		return InvoiceForm{}, errors.New(MsgSelectStatus)
	}

	return InvoiceForm{CustomerID: customerID, AmountCents: cents, Status: status}, nil
}

// parseAmount coerces the submitted decimal-dollar string and enforces
// amount > 0. The stored value is integer cents.
func parseAmount(raw string) (int64, error) {
	dollars, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if dollars <= 0 {
		return 0, errors.New(MsgAmountTooLow)
	}
	return money.DollarsToCents(dollars)
}
