package connective

import "fmt"

var connectorEnglish = map[string]string{
	"因为…所以…":    "because…therefore…",
	"由于…因此…":    "because…therefore…",
	"既然…就…":     "since…then…",
	"因为…":       "because…",
	"由于…":       "since…",
	"正因为…":      "for this reason…",
	"…是因为…":     "...because...",
	"之所以…是因为…":  "the reason … is because…",
	"…的原因在于…":   "...is due to…",
	"导致…":       "lead to…",
	"使得…":       "make…",
	"所以…":       "therefore…",
	"因此…":       "thus…",
	"因而…":       "as a result…",
	"于是…":       "then…",
	"结果…":       "as a result…",
	"结果是…":      "the result is…",
	"从而…":       "thus…",
	"进而…":       "and then…",
	"以至于…":      "to the point that…",
	"如果…就…":     "if…then…",
	"要是…就…":     "if…then…",
	"假如…就…":     "if…then…",
	"只要…就…":     "as long as…then…",
	"只有…才…":     "only if…then…",
	"除非…否则…":    "unless…otherwise…",
	"…的话…":      "if…then…",
	"否则…":       "otherwise…",
	"在…的情况下…":   "when…",
	"虽然…但是…":    "although…but…",
	"虽然…但…":     "although…but…",
	"尽管…但…":     "although…but…",
	"尽管…仍然…":    "although…still…",
	"不过…":       "however…",
	"可是…":       "but…",
	"然而…":       "however…",
	"却…":        "yet…",
	"反而…":       "rather…",
	"表面上…其实…":   "on the surface…actually…",
	"一方面…另一方面…": "on the one hand…on the other hand…",
	"当…的时候…":    "when…",
	"在…的时候…":    "when…",
	"…以后…":      "after…",
	"…之后…":      "after…",
	"…之前…":      "before…",
	"从…开始…":     "from…started…",
	"自从…以后…":    "since…after…",
	"随着…":       "as…",
	"每当…":       "whenever…",
	"为了…":       "in order to…",
	"…为了…":      "...in order to…",
	"以便…":       "...in order to…",
	"好让…":       "so that…",
	"为的是…":      "for the purpose of…",
	"免得…":       "lest…",
	"以免…":       "in order not to…",
	"为…起见…":     "for the sake of…",
	"不但…而且…":    "not only…but also…",
	"不仅…还…":     "not only…but also…",
	"而且…":       "and also…",
	"并且…":       "and also…",
	"同时…":       "at the same time…",
	"…也…":       "also…",
	"也…":        "also…",
	"除了…以外，还…":  "in addition to…also…",
	"要么…要么…":    "either…or…",
	"或者…或者…":    "or…or…",
	"不是…就是…":    "either…or…",
	"或者…":       "...or…",
	"与其…不如…":    "rather…than…",
	"宁可…也不…":    "I'd rather…than…",
}

// ConnectorEnglish gives an English gloss for a marker label, or
// "connector" when the label is unknown.
func ConnectorEnglish(markersZH string) string {
	if en, ok := connectorEnglish[markersZH]; ok {
		return en
	}
	return "connector"
}

// ConnectorLabel renders "markers (english)".
func ConnectorLabel(markersZH string) string {
	return fmt.Sprintf("%s (%s)", markersZH, ConnectorEnglish(markersZH))
}

func BuildChallengeEN(spec Spec) string {
	l1, l2 := spec.Labels()
	return fmt.Sprintf("Use \"%s\" and \"%s\". Write exactly two sentences.", ConnectorLabel(l1), ConnectorLabel(l2))
}

func BuildSummaryEN(spec Spec) string {
	l1, l2 := spec.Labels()
	return fmt.Sprintf("Connectors: %s + %s", ConnectorLabel(l1), ConnectorLabel(l2))
}
