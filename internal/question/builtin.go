package question

// BuiltinName is the source name reported when every configured source
// fell through and the embedded set was used.
const BuiltinName = "builtin"

// BuiltinSet returns the embedded drill set. It is the terminal link of
// the fallback chain and always validates.
func BuiltinSet() []Record {
	return []Record{
		{
			ID:            1,
			Title:         "Run a web search from the launcher",
			Description:   "Open the launcher and run a web search without touching the mouse.",
			Difficulty:    DifficultyEasy,
			EstimatedTime: "30s",
			Category:      "launcher",
			Steps: []string{
				"Open the launcher with its global hotkey",
				"Type the search query",
				"Press enter on the web search action",
			},
		},
		{
			ID:            2,
			Title:         "Paste an earlier clipboard entry",
			Description:   "Recall something copied three items ago using clipboard history.",
			Difficulty:    DifficultyEasy,
			EstimatedTime: "45s",
			Category:      "clipboard",
			Steps: []string{
				"Open clipboard history",
				"Filter to the entry you want",
				"Confirm to paste it into the frontmost app",
			},
		},
		{
			ID:            3,
			Title:         "Open a fresh browser window",
			Description:   "Start a new browser window in one motion, not a tab in the current one.",
			Difficulty:    DifficultyMedium,
			EstimatedTime: "20s",
			Category:      "windows",
			Steps: []string{
				"Invoke the new-window action for the default browser",
				"Verify focus landed on the new window",
			},
		},
		{
			ID:            4,
			Title:         "Send a chat message to a teammate",
			Description:   "Deliver a short status update to a named teammate through the chat quicklink.",
			Difficulty:    DifficultyMedium,
			EstimatedTime: "1m",
			Category:      "messaging",
			Steps: []string{
				"Open the chat quicklink",
				"Pick the teammate from the recent list",
				"Type the message and send it",
			},
		},
		{
			ID:            5,
			Title:         "Look up a page in the team wiki",
			Description:   "Find the onboarding page in the team wiki starting from a cold search.",
			Difficulty:    DifficultyHard,
			EstimatedTime: "90s",
			Category:      "search",
			Steps: []string{
				"Open the wiki search command",
				"Narrow by space, then by title",
				"Open the page in the browser",
			},
		},
		{
			ID:            6,
			Title:         "Triage a new issue",
			Description:   "Label and assign the newest unassigned issue in the tracker.",
			Difficulty:    DifficultyHard,
			EstimatedTime: "2m",
			Category:      "tracker",
			Steps: []string{
				"Open the tracker inbox",
				"Select the newest unassigned issue",
				"Apply a priority label",
				"Assign it to the on-call owner",
			},
		},
	}
}
