package segment_test

import (
	"strings"
	"testing"

	"github.com/clarity-counsel/counsel/internal/segment"
)

func TestSegmentEmptyInput(t *testing.T) {
	s := segment.New()

	for _, input := range []string{"", "   ", "\n\n\t"} {
		got := s.Segment(input)
		if len(got) != 0 {
			t.Errorf("Segment(%q) = %v, want empty", input, got)
		}
	}
}

func TestSegmentNumberedStructure(t *testing.T) {
	text := `1. The Employee shall perform all assigned duties diligently.
2. The Employer shall pay the agreed salary on the first of each month.
3. Either party may terminate this agreement with thirty days notice.
4. The Employee shall not disclose confidential business information to third parties.
5. Any dispute arising from this agreement shall be settled by arbitration.`

	got := segment.New().Segment(text)

	if len(got) != 5 {
		t.Fatalf("clause count = %d, want 5: %v", len(got), got)
	}
	if !strings.HasPrefix(got[0], "1.") {
		t.Errorf("first clause = %q, should keep its numbering", got[0])
	}
	if !strings.Contains(got[4], "arbitration") {
		t.Errorf("clause order not preserved: last = %q", got[4])
	}
}

func TestSegmentSentenceFallback(t *testing.T) {
	// Single-line prose has no structural anchors, so the sentence pass runs.
	text := "The tenant shall maintain the premises in good repair. Short one. This clause describes additional obligations that the parties accept without reservation."

	got := segment.New().Segment(text)

	if len(got) != 2 {
		t.Fatalf("clause count = %d, want 2: %v", len(got), got)
	}
	if !strings.Contains(got[0], "shall") {
		t.Errorf("legal sentence was not kept: %q", got[0])
	}
	for _, clause := range got {
		if clause == "Short one." {
			t.Error("short fragment should be dropped")
		}
	}
}

func TestSegmentParagraphFallback(t *testing.T) {
	// No punctuation and under the long-sentence threshold, so the sentence
	// pass yields nothing and the paragraph split applies.
	text := "brief terms between both named parties here"

	got := segment.New().Segment(text)

	if len(got) != 1 {
		t.Fatalf("clause count = %d, want 1: %v", len(got), got)
	}
	if got[0] != text {
		t.Errorf("paragraph = %q, want full text", got[0])
	}
}

func TestSegmentDropsMetadata(t *testing.T) {
	text := `1. The borrower shall repay the loan with interest as scheduled.
2. Confidential draft
3. The lender may demand collateral if repayment obligations are breached.
4. The borrower shall insure all collateral against loss or damage.
5. Default interest accrues daily on any overdue repayment amount.`

	got := segment.New().Segment(text)

	for _, clause := range got {
		if strings.Contains(strings.ToLower(clause), "confidential draft") {
			t.Errorf("metadata clause survived: %q", clause)
		}
	}
	if len(got) != 4 {
		t.Errorf("clause count = %d, want 4: %v", len(got), got)
	}
}

func TestSegmentDropsShortSegments(t *testing.T) {
	text := `1. Fees
2. The service provider shall deliver all agreed work products on schedule.
3. The client shall review deliverables within ten business days of receipt.
4. Late payment incurs interest at the maximum rate permitted by law.
5. Either party may terminate for material breach after written notice.`

	got := segment.New().Segment(text)

	for _, clause := range got {
		if len(clause) < 15 {
			t.Errorf("segment under minimum length survived: %q", clause)
		}
	}
	if len(got) != 4 {
		t.Errorf("clause count = %d, want 4: %v", len(got), got)
	}
}

func TestSegmentNormalizesWhitespace(t *testing.T) {
	text := "1. The  partner   shall\tcontribute capital as agreed in this section.\r\n\r\n\r\n\r\n2. Profits shall be divided equally between the partners each quarter.\r\n3. Neither partner may assign partnership interests without written consent.\r\n4. The partnership shall maintain accurate books open to both partners."

	got := segment.New().Segment(text)

	if len(got) != 4 {
		t.Fatalf("clause count = %d, want 4: %v", len(got), got)
	}
	if strings.Contains(got[0], "  ") || strings.Contains(got[0], "\t") {
		t.Errorf("whitespace runs not collapsed: %q", got[0])
	}
}
