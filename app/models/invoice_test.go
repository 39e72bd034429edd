package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInvoiceNumber(t *testing.T) {
	first := NewInvoiceNumber()
	second := NewInvoiceNumber()

	assert.True(t, strings.HasPrefix(first, "INV-"))
	assert.Len(t, first, len("INV-")+12)
	assert.Equal(t, strings.ToUpper(first), first)
	assert.NotEqual(t, first, second)
}

func TestInvoiceIsOpen(t *testing.T) {
	assert.True(t, (&Invoice{Status: INVOICE_STATUS_PENDING}).IsOpen())
	assert.True(t, (&Invoice{Status: INVOICE_STATUS_OVERDUE}).IsOpen())
	assert.False(t, (&Invoice{Status: INVOICE_STATUS_PAID}).IsOpen())
}
