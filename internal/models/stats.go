package models

type Stats struct {
	Duration         int
	DailyPace        float64
	Count            int
	Percent          float64
	Elapsed          int
	CumulativeTarget float64
	MarkerPercent    float64
	Delta            int
}
