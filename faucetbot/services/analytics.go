package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/textrp/faucetbot/faucetbot/utils"
)

const maxHistoryEntries = 1000

type commandMetric struct {
	Command string
	Took    time.Duration
	Success bool
	At      time.Time
}

// Analytics keeps in-memory usage counters for the operator status
// report. It is intentionally not persisted; counters reset with the
// process.
type Analytics struct {
	mu        sync.Mutex
	startedAt time.Time
	history   []commandMetric
	counts    map[string]int64
	failures  map[string]int64
	totalTook map[string]time.Duration
}

func NewAnalytics() *Analytics {
	return &Analytics{
		startedAt: time.Now(),
		counts:    make(map[string]int64),
		failures:  make(map[string]int64),
		totalTook: make(map[string]time.Duration),
	}
}

// LogCommand records one dispatched chat command.
func (a *Analytics) LogCommand(command string, took time.Duration, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.counts[command]++
	a.totalTook[command] += took
	if err != nil {
		a.failures[command]++
	}

	a.history = append(a.history, commandMetric{
		Command: command,
		Took:    took,
		Success: err == nil,
		At:      time.Now(),
	})
	if len(a.history) > maxHistoryEntries {
		a.history = a.history[len(a.history)-maxHistoryEntries:]
	}
}

// Report renders the status summary shown by the admin botstats
// command.
func (a *Analytics) Report() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var total, failed int64
	for _, n := range a.counts {
		total += n
	}
	for _, n := range a.failures {
		failed += n
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Bot Statistics**\n\n")
	fmt.Fprintf(&b, "**Uptime:** %s\n", time.Since(a.startedAt).Round(time.Second))
	fmt.Fprintf(&b, "**Commands handled:** %s\n", utils.FormatNumber(total))
	if total > 0 {
		fmt.Fprintf(&b, "**Error rate:** %.1f%%\n", float64(failed)/float64(total)*100)
	}

	names := make([]string, 0, len(a.counts))
	for name := range a.counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return a.counts[names[i]] > a.counts[names[j]] })

	if len(names) > 0 {
		b.WriteString("\n**By command:**\n")
	}
	for _, name := range names {
		avg := a.totalTook[name] / time.Duration(a.counts[name])
		fmt.Fprintf(&b, "- `%s`: %d calls, avg %s", name, a.counts[name], avg.Round(time.Millisecond))
		if a.failures[name] > 0 {
			fmt.Fprintf(&b, ", %d failed", a.failures[name])
		}
		b.WriteString("\n")
	}
	return b.String()
}
