package match

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Oracle answers questions the decision engine cannot settle on its own.
type Oracle interface {
	// Ask presents an ambiguous pair and returns whether both entries
	// denote the same publication. Implementations may block.
	Ask(q Question) bool
}

// AnswerCache memoizes oracle answers for one session. It is append-only and
// never persisted; its size is bounded by the number of distinct ambiguous
// pairs seen in a run. Lookup is a linear scan, which is fine at that size.
type AnswerCache struct {
	answers []cachedAnswer
}

type cachedAnswer struct {
	key   questionKey
	value bool
}

func (c *AnswerCache) lookup(k questionKey) (bool, bool) {
	for _, a := range c.answers {
		if a.key == k {
			return a.value, true
		}
	}
	return false, false
}

func (c *AnswerCache) record(k questionKey, v bool) {
	c.answers = append(c.answers, cachedAnswer{key: k, value: v})
}

// Len returns the number of cached answers.
func (c *AnswerCache) Len() int {
	return len(c.answers)
}

// Session ties a decision run to an oracle and its answer cache. In auto
// mode every ambiguous pair resolves to false without consulting the oracle,
// so a fully automated run never guesses and never blocks.
type Session struct {
	mu     sync.Mutex
	oracle Oracle
	cache  AnswerCache
	auto   bool
}

// NewSession creates a session around the given oracle. With auto set the
// oracle is never consulted.
func NewSession(oracle Oracle, auto bool) *Session {
	return &Session{oracle: oracle, auto: auto}
}

// Matches runs the decision engine on one article/reference pair and
// resolves an ambiguous outcome through the session's oracle.
func (s *Session) Matches(artDOI, refDOI, artTitle, refTitle string, artAuthors, refAuthors []string) bool {
	decision, question := Decide(artDOI, refDOI, artTitle, refTitle, artAuthors, refAuthors)
	switch decision {
	case Matched:
		return true
	case Ambiguous:
		return s.Resolve(question)
	default:
		return false
	}
}

// Resolve answers an ambiguous question, consulting the cache before the
// oracle so the same question is never asked twice in a session. The lock
// spans lookup, prompt, and record: concurrent callers missing the cache for
// the same question must not double-prompt.
func (s *Session) Resolve(q Question) bool {
	if s.auto {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := q.key()
	if answer, ok := s.cache.lookup(key); ok {
		return answer
	}

	answer := s.oracle.Ask(q)
	s.cache.record(key, answer)
	return answer
}

// Answered returns how many distinct questions this session has resolved.
func (s *Session) Answered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

// ConsoleOracle asks the operator over a terminal. Anything other than "y"
// counts as no.
type ConsoleOracle struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleOracle creates an oracle reading answers from in and writing
// prompts to out.
func NewConsoleOracle(in io.Reader, out io.Writer) *ConsoleOracle {
	return &ConsoleOracle{in: bufio.NewReader(in), out: out}
}

// Ask prints both entries and blocks until the operator answers.
func (o *ConsoleOracle) Ask(q Question) bool {
	fmt.Fprintln(o.out, "Unsure whether the entries belong together or not:")
	fmt.Fprintf(o.out, "Article:   Title = %s\n           Authors = %s\n", q.TitleA, strings.Join(q.AuthorsA, ", "))
	fmt.Fprintf(o.out, "Reference: Title = %s\n           Authors = %s\n", q.TitleB, strings.Join(q.AuthorsB, ", "))
	fmt.Fprint(o.out, "Do both entries belong to the same article? [y/n] ")

	line, err := o.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.TrimSpace(line) == "y"
}

// ScriptedOracle replays a fixed list of answers and counts how often it was
// consulted. Exhausted scripts answer no.
type ScriptedOracle struct {
	Answers []bool
	Calls   int
}

// Ask returns the next scripted answer.
func (o *ScriptedOracle) Ask(q Question) bool {
	defer func() { o.Calls++ }()
	if o.Calls < len(o.Answers) {
		return o.Answers[o.Calls]
	}
	return false
}
