package interact

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/NilFoundation/zkpaymaster/internal/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Printer writes the human-readable progress of a run.
type Printer struct {
	out    io.Writer
	hash   *color.Color
	value  *color.Color
	accent *color.Color
	title  cases.Caser
}

func NewPrinter(out io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:    out,
		hash:   color.New(color.FgCyan),
		value:  color.New(color.FgGreen, color.Bold),
		accent: color.New(color.FgYellow),
		title:  cases.Title(language.English),
	}
	if noColor {
		p.hash.DisableColor()
		p.value.DisableColor()
		p.accent.DisableColor()
	}
	return p
}

func (p *Printer) println(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Banner(contract common.Address) {
	p.println("Running script to interact with contract %s", p.hash.Sprint(contract.Hex()))
}

func (p *Printer) Funded(amount types.Value, hash common.Hash) {
	p.println("Paymaster funded with %s ETH, transaction hash: %s", p.value.Sprint(amount.Ether()), p.hash.Sprint(hash.Hex()))
}

func (p *Printer) FundingSkipped() {
	p.println("Paymaster funding skipped")
}

func (p *Printer) Balance(label string, wei *big.Int) {
	p.println("%s: %s ETH", label, p.value.Sprint(types.FormatEther(wei)))
}

func (p *Printer) Greeting(greeting string) {
	p.println("Current message is: %s", p.accent.Sprint(greeting))
}

func (p *Printer) WriteTx(hash common.Hash) {
	p.println("Transaction hash of setting new message: %s", p.hash.Sprint(hash.Hex()))
}

func (p *Printer) NewGreeting(greeting string) {
	p.println("The message now is: %s", p.accent.Sprint(greeting))
}

func (p *Printer) Overrides(o *Overrides) {
	p.println("Max fee per gas: %s", p.value.Sprint(o.MaxFeePerGas))
	p.println("Max priority fee per gas: %s", p.value.Sprint(o.MaxPriorityFeePerGas))
	p.println("Gas limit: %s", p.value.Sprint(o.GasLimit))
	if meta := o.CustomData; meta != nil {
		if meta.GasPerPubdata != nil {
			p.println("Gas per pubdata: %s", p.value.Sprint(meta.GasPerPubdata.ToInt()))
		}
		if params := meta.PaymasterParams; params != nil {
			p.println("Paymaster: %s", p.hash.Sprint(params.Paymaster.Hex()))
			p.println("Paymaster input: %s", p.hash.Sprintf("0x%x", []byte(params.PaymasterInput)))
		}
	}
}

// Timings prints how long each stage took, e.g. "Overrides Built: 120ms".
func (p *Printer) Timings(timings []StageTiming) {
	for _, t := range timings {
		name := p.title.String(strings.ReplaceAll(t.Stage.String(), "-", " "))
		p.println("%s: %s", name, t.Duration)
	}
}

func (p *Printer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	p.println("%s", data)
	return nil
}
