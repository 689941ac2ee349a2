// Command settle prints the settlement of a snapshot file without a server.
//
//	settle -in trip.json -locale en-US -unit USD
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mmynk/costshare/internal/calculator"
	"github.com/mmynk/costshare/internal/currency"
	"github.com/mmynk/costshare/internal/models"
	"github.com/mmynk/costshare/pkg/logging"
)

func main() {
	in := flag.String("in", "-", "snapshot JSON file, - for stdin")
	locale := flag.String("locale", currency.DefaultLocale, "locale for amounts")
	unit := flag.String("unit", currency.DefaultUnit, "currency label appended to amounts")
	flag.Parse()

	logging.Setup()

	if err := run(*in, currency.NewFormatter(*locale, *unit), os.Stdout); err != nil {
		slog.Error("settle failed", "error", err)
		os.Exit(1)
	}
}

func run(path string, f *currency.Formatter, out io.Writer) error {
	r := io.Reader(os.Stdin)
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open snapshot: %w", err)
		}
		defer file.Close()
		r = file
	}

	snapshot, err := models.DecodeSnapshot(r)
	if err != nil {
		return err
	}
	report := calculator.Compute(*snapshot)
	if len(report.Unassigned) > 0 {
		slog.Warn("Expenses reference unknown families", "families", len(report.Unassigned), "amount", report.UnassignedTotal())
	}
	return printReport(out, report, snapshot, f)
}

func printReport(out io.Writer, r calculator.Report, snapshot *models.Snapshot, f *currency.Formatter) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Total expenses:\t%s\n", f.Format(r.TotalExpenses))
	fmt.Fprintf(w, "People:\t%d\n", r.TotalPeople)
	fmt.Fprintf(w, "Per person:\t%s\n\n", f.Format(r.PerPersonCost))

	fmt.Fprintln(w, "FAMILY\tMEMBERS\tSHOULD PAY\tPAID\tBALANCE\tSTATUS")
	for _, s := range r.Settlements {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			s.FamilyName, s.Members,
			f.Format(s.ShouldPay), f.Format(s.ActuallyPaid), f.Format(s.Balance),
			calculator.Status(s.Balance),
		)
	}

	if len(r.Breakdowns) > 0 {
		fmt.Fprintln(w, "\nEXPENSE\tPAID BY\tAMOUNT\tSHARES")
		for _, b := range r.Breakdowns {
			shares := make([]string, 0, len(snapshot.Families))
			for _, fam := range snapshot.Families {
				if share, ok := b.FamilyShares[fam.ID]; ok {
					shares = append(shares, share.FamilyName+" "+f.Format(share.Share))
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Item, b.PaidBy, f.Format(b.TotalAmount), strings.Join(shares, ", "))
		}
	}

	if len(r.Instructions) > 0 {
		fmt.Fprintln(w)
		for _, in := range r.Instructions {
			fmt.Fprintf(w, "%s pays %s to %s\n", in.Debtor, f.Format(in.Amount), strings.Join(in.Creditors, " or "))
		}
	}

	if len(r.Unassigned) > 0 {
		fmt.Fprintln(w, "\nUNASSIGNED\tAMOUNT")
		for _, u := range r.Unassigned {
			fmt.Fprintf(w, "%s\t%s\n", u.FamilyID, f.Format(u.Amount))
		}
	}
	return w.Flush()
}
