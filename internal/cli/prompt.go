package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptYesNo writes question to out and reads one line from in. An empty
// reply, or no input at all, returns defaultAnswer.
func promptYesNo(in io.Reader, out io.Writer, question string, defaultAnswer bool) bool {
	hint := "[y/N]"
	if defaultAnswer {
		hint = "(Y/n)"
	}
	fmt.Fprintf(out, "%s %s: ", question, hint)

	reader := bufio.NewReader(in)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	switch answer {
	case "":
		return defaultAnswer
	case "y", "yes":
		return true
	default:
		return false
	}
}
