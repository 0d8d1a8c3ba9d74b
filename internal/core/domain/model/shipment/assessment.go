package shipment

// Quality scoring policy: every breach event costs a flat penalty, the score is
// clamped to [MinQualityScore, InitialQualityScore], and there is no recovery on
// compliant readings.
const (
	// InitialQualityScore is assigned at registration.
	InitialQualityScore = 100

	// MinQualityScore is the floor the score never drops below.
	MinQualityScore = 0

	// BreachPenalty is subtracted from the quality score per breach event.
	BreachPenalty = 10
)

// Assessment is the read-only quality band derived from the quality score.
// It is never stored; callers derive it on demand with AssessQuality.
type Assessment string

const (
	// AssessmentExcellent covers scores of 80 and above.
	AssessmentExcellent Assessment = "excellent"

	// AssessmentGood covers scores from 60 to 79.
	AssessmentGood Assessment = "good"

	// AssessmentFair covers scores from 40 to 59.
	AssessmentFair Assessment = "fair"

	// AssessmentPoor covers scores below 40.
	AssessmentPoor Assessment = "poor"
)

// AssessQuality maps a quality score to its assessment band.
// Band boundaries are inclusive at the lower edge: a score of exactly 60 is
// still "good".
func AssessQuality(score int) Assessment {
	switch {
	case score >= 80:
		return AssessmentExcellent
	case score >= 60:
		return AssessmentGood
	case score >= 40:
		return AssessmentFair
	default:
		return AssessmentPoor
	}
}

// String returns the band name.
func (a Assessment) String() string {
	return string(a)
}
