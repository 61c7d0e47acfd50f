// Package wechatwork posts batch results to a WeChat Work group robot.
package wechatwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ChlBlast/pkg/blastHits"
)

const DefaultURL = "https://qyapi.weixin.qq.com/cgi-bin/webhook/send"

type Message struct {
	MsgType  string          `json:"msgtype"`
	Markdown MarkdownContent `json:"markdown"`
}

type MarkdownContent struct {
	Content string `json:"content"`
}

// Notifier is disabled when Key is empty
type Notifier struct {
	URL    string
	Key    string
	Client *http.Client
}

func NewNotifier(key string) *Notifier {
	return &Notifier{
		URL:    DefaultURL,
		Key:    key,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.Key != ""
}

// RunReport renders a finished batch as markdown
func RunReport(input, output string, results *blastHits.Results, series ...blastHits.Series) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## ChlBlast done\n> input: %s\n> output: %s\n", input, output)
	for _, assay := range blastHits.Assays {
		var n int
		switch assay {
		case blastHits.AssayA:
			n = countSamples(results.ChlA)
		case blastHits.AssayF:
			n = countSamples(results.ChlF)
		case blastHits.AssaySingleCopy:
			for _, ys := range results.SingleCopy {
				n += len(ys)
			}
		}
		fmt.Fprintf(&b, "> %s samples: %d\n", assay, n)
	}
	for _, s := range series {
		var f, a float64
		for i := range s.F {
			f += s.F[i]
			a += s.A[i]
		}
		fmt.Fprintf(&b, "> year %d normalized total: ChlF %.4f, ChlA %.4f\n", s.Year, f, a)
	}
	return b.String()
}

func countSamples(mc blastHits.MonthCounts) (n int) {
	for _, ys := range mc {
		n += len(ys)
	}
	return
}

// SendMarkdown posts content, it is a no-op when the notifier is disabled
func (n *Notifier) SendMarkdown(content string) error {
	if !n.Enabled() {
		return nil
	}
	data, err := json.Marshal(Message{MsgType: "markdown", Markdown: MarkdownContent{Content: content}})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	resp, err := n.Client.Post(n.URL+"?key="+n.Key, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook status: %d", resp.StatusCode)
	}
	slog.Info("notification sent")
	return nil
}
