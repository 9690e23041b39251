package score

import (
	"testing"

	"github.com/theopenlane/mailmeter/internal/types"
)

func passFindings() types.DNSFindings {
	return types.DNSFindings{
		MX:     types.CheckPass,
		SPF:    types.CheckPass,
		DKIM:   types.CheckPass,
		DMARC:  types.CheckPass,
		Vendor: types.VendorPrivate,
	}
}

func TestScore(t *testing.T) {
	weights := DefaultWeights()

	cases := []struct {
		name        string
		findings    types.DNSFindings
		outcome     types.SMTPOutcome
		digitPrefix bool
		want        int
	}{
		{
			name:     "full pass with available mailbox",
			findings: passFindings(),
			outcome:  types.SMTPAvailable,
			want:     100,
		},
		{
			name:     "full pass behind protected provider",
			findings: passFindings(),
			outcome:  types.SMTPProtected,
			want:     90,
		},
		{
			name:     "everything failed",
			findings: types.FailedFindings(),
			outcome:  types.SMTPUnverifiable,
			want:     0,
		},
		{
			name: "mx and protected only",
			findings: types.DNSFindings{
				MX:     types.CheckPass,
				SPF:    types.CheckFail,
				DKIM:   types.CheckFail,
				DMARC:  types.CheckFail,
				Vendor: types.VendorGoogle,
			},
			outcome: types.SMTPProtected,
			want:    60,
		},
		{
			name:        "digit prefix penalty applied",
			findings:    passFindings(),
			outcome:     types.SMTPAvailable,
			digitPrefix: true,
			want:        70,
		},
		{
			name:        "score floors at zero",
			findings:    types.FailedFindings(),
			outcome:     types.SMTPNotFound,
			digitPrefix: true,
			want:        0,
		},
		{
			name:     "not found contributes nothing",
			findings: passFindings(),
			outcome:  types.SMTPNotFound,
			want:     50,
		},
		{
			name:     "unverifiable contributes nothing",
			findings: passFindings(),
			outcome:  types.SMTPUnverifiable,
			want:     50,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := weights.Score(tc.findings, tc.outcome, tc.digitPrefix)
			if got != tc.want {
				t.Errorf("expected score %d, got %d", tc.want, got)
			}
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	weights := DefaultWeights()
	findings := passFindings()

	first := weights.Score(findings, types.SMTPProtected, false)
	for range 10 {
		if got := weights.Score(findings, types.SMTPProtected, false); got != first {
			t.Fatalf("score not deterministic: %d then %d", first, got)
		}
	}
}

func TestScore_CustomWeightsDisablePenalty(t *testing.T) {
	weights := DefaultWeights()
	weights.DigitPrefixPenalty = 0

	got := weights.Score(passFindings(), types.SMTPAvailable, true)
	if got != 100 {
		t.Errorf("expected 100 with penalty disabled, got %d", got)
	}
}

func TestScore_RangeUnderDefaults(t *testing.T) {
	weights := DefaultWeights()

	statuses := []types.CheckStatus{types.CheckPass, types.CheckFail}
	outcomes := []types.SMTPOutcome{
		types.SMTPAvailable, types.SMTPProtected, types.SMTPNotFound, types.SMTPUnverifiable,
	}

	for _, mx := range statuses {
		for _, spf := range statuses {
			for _, dkim := range statuses {
				for _, dmarc := range statuses {
					for _, outcome := range outcomes {
						for _, digit := range []bool{true, false} {
							findings := types.DNSFindings{MX: mx, SPF: spf, DKIM: dkim, DMARC: dmarc}
							got := weights.Score(findings, outcome, digit)
							if got < 0 || got > 100 {
								t.Fatalf("score %d out of [0,100] for %+v %s digit=%v", got, findings, outcome, digit)
							}
						}
					}
				}
			}
		}
	}
}
