package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() InvoiceInput {
	return InvoiceInput{
		CustomerID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
		Amount:     "15.99",
		Status:     "pending",
	}
}

func TestParseInvoiceFormValid(t *testing.T) {
	form, formErrs := ParseInvoiceForm(validInput(), "unused")
	require.Nil(t, formErrs)
	assert.Equal(t, "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", form.CustomerID)
	assert.Equal(t, int64(1599), form.AmountCents)
	assert.Equal(t, "pending", form.Status)
}

func TestParseInvoiceFormAcceptsBothStatuses(t *testing.T) {
	for _, status := range []string{"pending", "paid"} {
		in := validInput()
		in.Status = status
		_, formErrs := ParseInvoiceForm(in, "unused")
		assert.Nil(t, formErrs, "status %q", status)
	}
}

func TestParseInvoiceFormMissingCustomer(t *testing.T) {
	in := validInput()
	in.CustomerID = "  "
	_, formErrs := ParseInvoiceForm(in, "Missing Fields. Failed to Create Invoice.")
	require.NotNil(t, formErrs)
	assert.Equal(t, []string{MsgSelectCustomer}, formErrs.Errors["customerId"])
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", formErrs.Message)
}

func TestParseInvoiceFormBadAmount(t *testing.T) {
	for _, amount := range []string{"0", "-5", "abc", ""} {
		in := validInput()
		in.Amount = amount
		_, formErrs := ParseInvoiceForm(in, "msg")
		require.NotNil(t, formErrs, "amount %q", amount)
		assert.Equal(t, []string{MsgAmountTooLow}, formErrs.Errors["amount"], "amount %q", amount)
	}
}

func TestParseInvoiceFormBadStatus(t *testing.T) {
	for _, status := range []string{"overdue", "PAID", ""} {
		in := validInput()
		in.Status = status
		_, formErrs := ParseInvoiceForm(in, "msg")
		require.NotNil(t, formErrs, "status %q", status)
		assert.Equal(t, []string{MsgSelectStatus}, formErrs.Errors["status"], "status %q", status)
	}
}

func TestParseInvoiceFormCollectsAllErrors(t *testing.T) {
	_, formErrs := ParseInvoiceForm(InvoiceInput{}, "msg")
	require.NotNil(t, formErrs)
	assert.Len(t, formErrs.Errors, 3)
	assert.Contains(t, formErrs.Errors, "customerId")
	assert.Contains(t, formErrs.Errors, "amount")
	assert.Contains(t, formErrs.Errors, "status")
}

func TestParseInvoiceFormStrictFailsFast(t *testing.T) {
	_, err := ParseInvoiceFormStrict(InvoiceInput{})
	require.Error(t, err)
	assert.Equal(t, MsgSelectCustomer, err.Error())

	in := validInput()
	in.Amount = "0"
	_, err = ParseInvoiceFormStrict(in)
	require.Error(t, err)
	assert.Equal(t, MsgAmountTooLow, err.Error())

	form, err := ParseInvoiceFormStrict(validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1599), form.AmountCents)
}
