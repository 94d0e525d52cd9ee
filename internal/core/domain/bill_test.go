package domain_test

import (
	"testing"

	"github.com/gwssd/medical_bills_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsValidBillStatus(t *testing.T) {
	for _, status := range domain.AllBillStatuses {
		assert.True(t, domain.IsValidBillStatus(string(status)), "expected %q to be valid", status)
	}

	assert.False(t, domain.IsValidBillStatus(""))
	assert.False(t, domain.IsValidBillStatus("Approved"))
	assert.False(t, domain.IsValidBillStatus("received from subdivision")) // case-sensitive
	assert.False(t, domain.IsValidBillStatus("Sent to MS"))
}

func TestIsValidBillStatus_TemplatedReceivedIsNotAMember(t *testing.T) {
	// The seeded initial status carries the subdivision name and is therefore
	// outside the closed set; only the generic form is a member.
	templated := domain.ReceivedStatusFor(domain.SubDivisionWS2)
	assert.False(t, domain.IsValidBillStatus(templated))
	assert.True(t, domain.IsValidBillStatus(string(domain.BillStatusReceived)))
}

func TestReceivedStatusFor(t *testing.T) {
	assert.Equal(t, "Received From W/S Sub Division No 2", domain.ReceivedStatusFor(domain.SubDivisionWS2))
	assert.Equal(t, "Received From Unknown", domain.ReceivedStatusFor("Unknown"))
}
