package smoothtext

import (
	"math"
	"time"
)

// Research-average reading speeds in words per minute.
const (
	// SilentReadingWPM is the average silent reading speed of adults.
	SilentReadingWPM = 238.0

	// ReadingAloudWPM is the average speed of reading out loud.
	ReadingAloudWPM = 183.0
)

// ReadingTime estimates how long reading text takes at the given speed,
// rounded up to a whole second. Speeds below one word per minute are clamped
// to one.
func (a *Analyzer) ReadingTime(text string, wordsPerMinute float64) time.Duration {
	if wordsPerMinute < 1 {
		wordsPerMinute = 1
	}

	seconds := float64(a.CountWords(text)) / wordsPerMinute * 60
	return time.Duration(math.Ceil(seconds)) * time.Second
}

// SilentReadingTime estimates reading time at the average silent speed of
// 238 words per minute.
func (a *Analyzer) SilentReadingTime(text string) time.Duration {
	return a.ReadingTime(text, SilentReadingWPM)
}

// ReadingAloudTime estimates reading time at the average out-loud speed of
// 183 words per minute.
func (a *Analyzer) ReadingAloudTime(text string) time.Duration {
	return a.ReadingTime(text, ReadingAloudWPM)
}
