package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

func TestDetectGaps_YearLongGap(t *testing.T) {
	records := []types.EmploymentRecord{
		{Company: "Acme", StartDate: "2019-01", EndDate: "2021-12"},
		{Company: "Globex", StartDate: "2023-01", EndDate: "present"},
	}

	report, err := DetectGaps(records, evalDate, DefaultGapConfig())
	require.NoError(t, err)

	assert.Equal(t, 12, report.TotalGapMonths)
	assert.Equal(t, -2, report.Penalty)
	require.Len(t, report.Gaps, 1)
	assert.Equal(t, Gap{After: "Acme", Before: "Globex", From: "2021-12", To: "2023-01", Months: 12}, report.Gaps[0])
}

func TestDetectGaps_ShortTransitionIgnored(t *testing.T) {
	records := []types.EmploymentRecord{
		{Company: "Acme", StartDate: "2020-01", EndDate: "2022-06"},
		{Company: "Globex", StartDate: "2022-08", EndDate: "present"},
	}

	report, err := DetectGaps(records, evalDate, DefaultGapConfig())
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalGapMonths)
	assert.Equal(t, 0, report.Penalty)
	assert.Empty(t, report.Gaps)
}

func TestDetectGaps_NestedRoleCreatesNoGap(t *testing.T) {
	records := []types.EmploymentRecord{
		{Company: "Long", StartDate: "2015-01", EndDate: "2020-12"},
		{Company: "Side gig", StartDate: "2016-01", EndDate: "2016-06"},
		{Company: "Next", StartDate: "2021-01", EndDate: "present"},
	}

	report, err := DetectGaps(records, evalDate, DefaultGapConfig())
	require.NoError(t, err)
	assert.Empty(t, report.Gaps)
	assert.Equal(t, 0, report.Penalty)
}

func TestDetectGaps_PenaltyIsCapped(t *testing.T) {
	records := []types.EmploymentRecord{
		{Company: "Acme", StartDate: "2010-01", EndDate: "2010-12"},
		{Company: "Globex", StartDate: "2015-01", EndDate: "2015-12"},
	}

	report, err := DetectGaps(records, evalDate, DefaultGapConfig())
	require.NoError(t, err)
	assert.Equal(t, 48, report.TotalGapMonths)
	assert.Equal(t, -5, report.Penalty)
}

func TestDetectGaps_SingleRole(t *testing.T) {
	report, err := DetectGaps([]types.EmploymentRecord{
		{Company: "Acme", StartDate: "2010-01"},
	}, evalDate, DefaultGapConfig())

	require.NoError(t, err)
	assert.NotNil(t, report.Gaps)
	assert.Empty(t, report.Gaps)
}

func TestDetectGaps_UnparseableDate(t *testing.T) {
	_, err := DetectGaps([]types.EmploymentRecord{
		{Company: "Acme", StartDate: "2010-01", EndDate: "2011-01"},
		{Company: "Globex", StartDate: "whenever"},
	}, evalDate, DefaultGapConfig())

	assert.ErrorIs(t, err, ErrUnparseableDate)
}
