package waves

import (
	apperrors "wave-scanner/internal/errors"
	"wave-scanner/internal/models"
)

// DetectZigzag compresses an OHLC series into alternating pivot points.
// While the trend is up, a low at or below the last pivot's low replaces
// that pivot (the downtrend merely continues); a high whose move over the
// last pivot's low meets threshold commits a high pivot and flips the
// trend. The down state mirrors this. Threshold is a ratio, e.g. 0.05 for
// a 5% reversal.
func DetectZigzag(s *models.Series, threshold float64) ([]models.PivotPoint, error) {
	if s == nil || s.Len() == 0 {
		return nil, apperrors.ErrEmptySeries
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, apperrors.NewValidationError("threshold", threshold, "must be in (0, 1)")
	}

	var pivots []models.PivotPoint
	lastPivot := 0
	upTrend := true

	for i := 1; i < s.Len(); i++ {
		if upTrend {
			switch {
			case s.Lows[i] <= s.Lows[lastPivot]:
				if len(pivots) > 0 {
					pivots = pivots[:len(pivots)-1]
				}
				pivots = append(pivots, models.PivotPoint{
					Index: i, Price: s.Lows[i], Date: s.Dates[i], High: false,
				})
				lastPivot = i
			case s.Highs[i]/s.Lows[lastPivot]-1 >= threshold:
				pivots = append(pivots, models.PivotPoint{
					Index: i, Price: s.Highs[i], Date: s.Dates[i], High: true,
				})
				upTrend = false
				lastPivot = i
			}
		} else {
			switch {
			case s.Highs[i] >= s.Highs[lastPivot]:
				if len(pivots) > 0 {
					pivots = pivots[:len(pivots)-1]
				}
				pivots = append(pivots, models.PivotPoint{
					Index: i, Price: s.Highs[i], Date: s.Dates[i], High: true,
				})
				lastPivot = i
			case s.Highs[lastPivot]/s.Lows[i]-1 >= threshold:
				pivots = append(pivots, models.PivotPoint{
					Index: i, Price: s.Lows[i], Date: s.Dates[i], High: false,
				})
				upTrend = true
				lastPivot = i
			}
		}
	}

	return pivots, nil
}
