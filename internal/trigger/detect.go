package trigger

// Detect scans the transcript for any wake phrase and, independently, any help keyword.
func (d *detector) Detect(transcript string) Detection {
	return Detection{
		Triggered:     d.containsAny(transcript, d.cfg.WakePhrases),
		HelpRequested: d.containsAny(transcript, d.cfg.HelpKeywords),
	}
}

func (d *detector) containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if _, _, ok := find(text, p, d.cfg.MatchPolicy); ok {
			return true
		}
	}
	return false
}
