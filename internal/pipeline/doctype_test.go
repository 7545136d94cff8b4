package pipeline_test

import (
	"testing"

	"github.com/clarity-counsel/counsel/internal/pipeline"
)

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"employment",
			"The employee shall report to the employer and receive a salary subject to termination terms.",
			"Employment Contract",
		},
		{
			"rental",
			"The tenant agrees to pay rent to the landlord for the lease of the premises.",
			"Rental Agreement",
		},
		{
			"nda",
			"All proprietary information disclosed under this non-disclosure agreement remains secret.",
			"Non-Disclosure Agreement",
		},
		{
			"loan",
			"The borrower shall repay the loan to the lender with interest, securing it with collateral.",
			"Loan Agreement",
		},
		{
			"no match",
			"Nothing in here resembles any known agreement vocabulary at all.",
			"Legal Document",
		},
		{
			"case insensitive",
			"TENANT AND LANDLORD AGREE ON RENT FOR THE PREMISES.",
			"Rental Agreement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pipeline.DetectDocumentType(tt.text); got != tt.want {
				t.Errorf("DetectDocumentType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectDocumentTypeTieBreak(t *testing.T) {
	// "service" scores one point for both Service Agreement and Terms of
	// Service; the earlier declaration wins the tie.
	got := pipeline.DetectDocumentType("a service is described")
	if got != "Service Agreement" {
		t.Errorf("tie break = %q, want Service Agreement", got)
	}
}
