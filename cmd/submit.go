package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/regform/internal/log"
	"github.com/zjrosen/regform/internal/registration"
)

var submitCmd = newSubmitCmd()

func newSubmitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "submit",
		Short: "Validate and submit a registration without the TUI",
		Long: `Validate and submit a registration from flags or a YAML file.

Flags override values read from --file. Validation failures are printed one
per line as "field: message" and the command exits non-zero.`,
		Example: `  regform submit --name "Ada Lovelace" --department "Computer Science" \
    --reg-number CS/2024/001 --state Lagos --age 22
  regform submit --file registration.yaml --age 23`,
		Args: cobra.NoArgs,
		RunE: runSubmit,
	}

	f := c.Flags()
	f.String("name", "", "full name (2-100 characters)")
	f.String("department", "", "department (2-100 characters)")
	f.String("reg-number", "", "registration number (3-50 characters)")
	f.String("state", "", "state of origin (see 'regform states')")
	f.String("age", "", "age in years (10-120)")
	f.StringP("file", "f", "", "YAML file with name, department, regNumber, stateOfOrigin and age")
	return c
}

// submitFlags maps flag names to the form field they fill.
var submitFlags = []struct {
	flag  string
	field registration.Field
}{
	{"name", registration.FieldName},
	{"department", registration.FieldDepartment},
	{"reg-number", registration.FieldRegNumber},
	{"state", registration.FieldStateOfOrigin},
	{"age", registration.FieldAge},
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	in, err := readSubmitInput(cmd)
	if err != nil {
		return err
	}

	if cfg.Debug {
		closeLog := log.InitWriter(cmd.ErrOrStderr())
		defer closeLog()
	}

	sub, errs := registration.Validate(in)
	if len(errs) > 0 {
		for _, fe := range errs.Ordered() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("registration rejected: %d invalid field(s)", len(errs))
	}

	provider, shutdown, err := newTracing(cfg)
	if err != nil {
		return err
	}
	defer shutdown()

	receipt, err := newSubmitter(cfg, provider).Submit(cmd.Context(), sub)
	if err != nil {
		return fmt.Errorf("submitting registration: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, receipt.Notification.String())
	fmt.Fprintf(out, "Receipt: %s\n", receipt.ID)
	return nil
}

// readSubmitInput loads --file when given, then applies every flag the user
// set explicitly on top.
func readSubmitInput(cmd *cobra.Command) (registration.Input, error) {
	var in registration.Input
	flags := cmd.Flags()

	if path, _ := flags.GetString("file"); path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user's own flag
		if err != nil {
			return in, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &in); err != nil {
			return in, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	for _, sf := range submitFlags {
		if !flags.Changed(sf.flag) {
			continue
		}
		v, _ := flags.GetString(sf.flag)
		setInput(&in, sf.field, v)
	}
	return in, nil
}

func setInput(in *registration.Input, f registration.Field, v string) {
	switch f {
	case registration.FieldName:
		in.Name = v
	case registration.FieldDepartment:
		in.Department = v
	case registration.FieldRegNumber:
		in.RegNumber = v
	case registration.FieldStateOfOrigin:
		in.StateOfOrigin = v
	case registration.FieldAge:
		in.Age = v
	}
}
