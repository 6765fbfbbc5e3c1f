package question

// Encouragement strings, one pool per outcome bucket. Selection is
// presentation sugar; the Correct/Close/far bucketing in Result is the
// contract callers rely on.
var (
	correctMessages = []string{
		"Great job!",
		"You got it!",
		"Amazing work!",
		"Super star!",
		"That's exactly right!",
	}

	closeMessages = []string{
		"So close! Try again!",
		"Almost there!",
		"Just a little off — you can do it!",
		"Nearly! Count one more time!",
	}

	farMessages = []string{
		"Good try! Have another go!",
		"Keep trying, you're learning!",
		"Not quite — give it another shot!",
		"Don't give up!",
	}

	invalidMessages = []string{
		"Type a number for your answer!",
		"Hmm, that's not a number. Try again!",
	}
)

// pickMessage selects an encouragement for the result's outcome bucket.
func (e *Engine) pickMessage(res Result) string {
	var pool []string
	switch {
	case !res.Valid:
		pool = invalidMessages
	case res.Correct:
		pool = correctMessages
	case res.Close:
		pool = closeMessages
	default:
		pool = farMessages
	}
	return pool[e.rng.Intn(len(pool))]
}
