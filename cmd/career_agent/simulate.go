package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-simulator/internal/config"
	"github.com/jonathan/career-simulator/internal/schemas"
	"github.com/jonathan/career-simulator/internal/simulation"
	"github.com/jonathan/career-simulator/internal/types"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a career path simulation from a request file",
	Long: `Runs a career path simulation offline, without the REST API or a database.

The request file is a JSON document with the same shape as the POST /simulations body.
Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runSimulateCmd,
}

var (
	simConfigPath  string
	simRequestPath string
	simOutputPath  string
	simTimeHorizon int
	simSeed        int64
	simPretty      bool
	simVerbose     bool
)

func init() {
	simulateCmd.Flags().StringVar(&simConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	simulateCmd.Flags().StringVarP(&simRequestPath, "request", "r", "", "Path to simulation request JSON file")
	simulateCmd.Flags().StringVarP(&simOutputPath, "output", "o", "", "Path to write the result to (default: stdout)")
	simulateCmd.Flags().IntVar(&simTimeHorizon, "time-horizon", 0, "Simulated years (1-30, overrides the request)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Fixed RNG seed for reproducible runs (overrides the request)")
	simulateCmd.Flags().BoolVar(&simPretty, "pretty", false, "Indent the JSON output")
	simulateCmd.Flags().BoolVarP(&simVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(simulateCmd)
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if simConfigPath != "" {
		loadedCfg, err := config.LoadConfig(simConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if simVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", simConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("request") {
		cfg.Request = simRequestPath
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = simOutputPath
	}
	if cmd.Flags().Changed("time-horizon") {
		cfg.TimeHorizon = simTimeHorizon
	}
	if cmd.Flags().Changed("seed") {
		seed := simSeed
		cfg.Seed = &seed
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Pretty = simPretty
	}

	if cfg.Request == "" {
		return fmt.Errorf("a request file is required (use --request or the config file)")
	}

	// Step 3: Read and validate the request document
	body, err := os.ReadFile(cfg.Request)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	if err := schemas.ValidateSimulateRequest(body); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("invalid request document:\n%s", ve.Error())
		}
		return fmt.Errorf("invalid request document: %w", err)
	}

	var req types.SimulateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return fmt.Errorf("failed to parse request: %w", err)
	}
	if cfg.TimeHorizon != 0 {
		req.TimeHorizon = cfg.TimeHorizon
	}
	if cfg.Seed != nil {
		req.Seed = cfg.Seed
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	// Step 4: Run the simulation
	input := simulation.RunInput{
		CurrentRole: types.Role{
			Title:             req.CurrentRole.Title,
			Level:             req.CurrentRole.Level,
			Salary:            req.CurrentRole.Salary,
			Industry:          req.CurrentRole.Industry,
			YearsOfExperience: req.CurrentRole.YearsOfExperience,
		},
		TargetRoles:     targetRolesFromRequest(req.TargetRoles),
		TimeHorizon:     req.HorizonOrDefault(),
		SuccessCriteria: req.SuccessCriteria,
		Seed:            seedFromRequest(req.Seed),
	}

	if simVerbose {
		_, _ = fmt.Fprintf(os.Stdout, "Simulating %d years from %q with seed %d\n",
			input.TimeHorizon, input.CurrentRole.Title, input.Seed)
	}

	sim, err := simulation.Run(input)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	// Step 5: Write the result
	var out []byte
	if cfg.Pretty {
		out, err = json.MarshalIndent(sim, "", "  ")
	} else {
		out, err = json.Marshal(sim)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if simVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Result written to: %s\n", cfg.Output)
		}
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// targetRolesFromRequest converts request targets to roles. The offline
// command has no job store, so job_id references stay unresolved and the
// inline fields are used as given.
func targetRolesFromRequest(targets []types.TargetRoleInput) []types.Role {
	roles := make([]types.Role, 0, len(targets))
	for _, t := range targets {
		roles = append(roles, types.Role{
			Title:    t.Title,
			Level:    t.Level,
			Salary:   t.Salary,
			Company:  t.Company,
			Industry: t.Industry,
		})
	}
	return roles
}

func seedFromRequest(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}
