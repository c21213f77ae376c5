package argv

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// AutoRecipientsFlag asks the console to harvest mail recipients from the
// cover letter. It is an instruction to this builder and is never forwarded
// to the engine.
const AutoRecipientsFlag = "--auto"

const coverFlagPrefix = "--cover="

// Recipients holds harvested mail recipients in cover-letter document
// order, one slice per header kind.
type Recipients struct {
	To  []string
	Cc  []string
	Bcc []string
}

var recipientLine = regexp.MustCompile(`^(To|Cc|Bcc):\s+(.*?)\s*$`)

// ExtractRecipients scans a cover letter line by line for To/Cc/Bcc
// headers. Values that look like "Name <addr>" are wrapped in double
// quotes; bare addresses pass through unquoted. A cover letter without
// matching lines yields three empty lists.
func ExtractRecipients(coverText string) Recipients {
	var recipients Recipients
	for _, line := range strings.Split(coverText, "\n") {
		match := recipientLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		value := match[2]
		if strings.Contains(value, "<") {
			value = fmt.Sprintf("%q", value)
		}
		switch match[1] {
		case "To":
			recipients.To = append(recipients.To, value)
		case "Cc":
			recipients.Cc = append(recipients.Cc, value)
		case "Bcc":
			recipients.Bcc = append(recipients.Bcc, value)
		}
	}
	return recipients
}

// Args renders the recipients as engine arguments.
func (r Recipients) Args() []string {
	args := make([]string, 0, len(r.To)+len(r.Cc)+len(r.Bcc))
	for _, value := range r.To {
		args = append(args, "--to="+value)
	}
	for _, value := range r.Cc {
		args = append(args, "--cc="+value)
	}
	for _, value := range r.Bcc {
		args = append(args, "--bcc="+value)
	}
	return args
}

// PrepareMailArgs post-processes the flattened mail argument vector. The
// auto-recipients flag is always stripped; when a cover-letter path is also
// present, the cover file is read and the harvested recipients are appended
// as --to/--cc/--bcc arguments.
func PrepareMailArgs(tokens []string) ([]string, error) {
	auto := false
	cover := ""
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == AutoRecipientsFlag {
			auto = true
			continue
		}
		if strings.HasPrefix(token, coverFlagPrefix) {
			cover = strings.TrimPrefix(token, coverFlagPrefix)
		}
		out = append(out, token)
	}
	if !auto || cover == "" {
		return out, nil
	}
	text, err := os.ReadFile(cover)
	if err != nil {
		return nil, fmt.Errorf("read cover letter %s: %w", cover, err)
	}
	return append(out, ExtractRecipients(string(text)).Args()...), nil
}
