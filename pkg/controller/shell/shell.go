package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
	"github.com/urbanwaste/dumpwatch/pkg/service/render"
	"github.com/urbanwaste/dumpwatch/pkg/usecase"
)

// errEndOfInput stops the menu loop when stdin is closed
var errEndOfInput = goerr.New("end of input")

const (
	keywordList = "list"
	keywordHelp = "help"
)

// Shell is the interactive menu loop. It validates every input before calling the use case.
type Shell struct {
	uc  usecase.PointUseCase
	in  *bufio.Reader
	out *render.Printer

	readErr error
}

// New creates a Shell reading answers from in and writing to out
func New(uc usecase.PointUseCase, in io.Reader, out *render.Printer) *Shell {
	return &Shell{
		uc:  uc,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run shows the menu until the user exits or input ends
func (s *Shell) Run(ctx context.Context) error {
	sessionID, err := types.NewSessionID()
	if err != nil {
		return goerr.Wrap(err, "failed to create session ID")
	}
	logger := ctxlog.From(ctx).With(slog.String("session", sessionID.String()))
	ctx = ctxlog.With(ctx, logger)
	logger.Debug("Shell session started")

	for {
		s.menu()
		choice, err := s.prompt("➡️  Enter your option: ")
		if err != nil {
			return s.finish(ctx)
		}

		switch choice {
		case "1":
			err = s.listByNeighborhood(ctx)
		case "2":
			err = s.listBySeverity(ctx)
		case "3":
			err = s.report(ctx)
		case "4":
			err = s.updateStatus(ctx)
		case "5":
			err = s.register(ctx)
		case "6":
			err = s.listByStatus(ctx)
		case "0":
			return s.finish(ctx)
		default:
			s.out.Println("  ❌ Invalid option, please try again.")
		}

		if err != nil {
			if errors.Is(err, errEndOfInput) {
				return s.finish(ctx)
			}
			logger.Error("Menu action failed", slog.String("option", choice), slog.Any("error", err))
			s.out.Printf("  ❌ Unexpected error: %v\n", err)
		}
	}
}

// finish ends the session. A failed read is returned instead of saying goodbye.
func (s *Shell) finish(ctx context.Context) error {
	if s.readErr != nil {
		ctxlog.From(ctx).Debug("Shell session aborted", slog.Any("error", s.readErr))
		return s.readErr
	}
	s.out.Println("\nExiting. Thanks for using dumpwatch! 👋")
	ctxlog.From(ctx).Debug("Shell session ended")
	return nil
}

func (s *Shell) menu() {
	s.out.Println("\n--- 🗑️  MENU - Waste Disposal Monitoring ---")
	s.out.Println("1. 🏙️  List points of a neighborhood")
	s.out.Println("2. ⚠️  List points by severity level")
	s.out.Println("3. 📊 Report of points per neighborhood")
	s.out.Println("4. 🔄 Update the status of a disposal point")
	s.out.Println("5. ➕ Register a new disposal point")
	s.out.Println("6. 🔎 Quick filters by status")
	s.out.Println("0. 🚪 Exit")
}

// prompt prints label and returns the trimmed answer. Lines have no length limit.
// A last line without a newline still counts as an answer.
func (s *Shell) prompt(label string) (string, error) {
	s.out.Printf("%s", label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.readErr = goerr.Wrap(err, "failed to read input")
			return "", errEndOfInput
		}
		if line == "" {
			s.out.Println()
			return "", errEndOfInput
		}
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) listByNeighborhood(ctx context.Context) error {
	input, err := s.prompt("  - Enter the neighborhood name (or 'list' to show registered neighborhoods): ")
	if err != nil {
		return err
	}

	if strings.ToLower(input) == keywordList {
		names, err := s.uc.Neighborhoods(ctx)
		if err != nil {
			return err
		}
		s.out.Println("\n  -> Neighborhoods with registered disposal points:")
		s.out.Neighborhoods(names)
		return nil
	}

	if input == "" {
		s.out.Println("  ❌ Error: the neighborhood name cannot be empty.")
		return nil
	}

	points, err := s.uc.FindByNeighborhood(ctx, input)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		s.out.Printf("  ❌ No points found for '%s'.\n", input)
		return nil
	}

	s.out.Printf("  -> Points in '%s':\n", input)
	s.out.PointsOfNeighborhood(points)
	return nil
}

func (s *Shell) listBySeverity(ctx context.Context) error {
	input, err := s.prompt("  - Enter the severity level (low, medium, high) or 'help' to see the definitions: ")
	if err != nil {
		return err
	}

	if strings.ToLower(input) == keywordHelp {
		s.out.Println("  -> Severity level definitions:")
		s.out.Bands()
		return nil
	}

	band, err := types.ParseBand(input)
	if err != nil {
		s.out.Println("  ❌ Error: invalid level. Please try 'low', 'medium', 'high' or 'help'.")
		return nil
	}

	points, err := s.uc.FindByBand(ctx, band)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		s.out.Printf("  ❌ No points found with severity in level '%s'.\n", band)
		return nil
	}

	min, max := band.Bounds()
	s.out.Printf("  -> Points with severity in level '%s' (%d-%d):\n", band, min, max)
	s.out.PointsWithNeighborhood(points)
	return nil
}

func (s *Shell) report(ctx context.Context) error {
	report, err := s.uc.Report(ctx)
	if err != nil {
		return err
	}

	s.out.Println("  -> Report of disposal points per neighborhood:")
	if len(report) == 0 {
		s.out.Println("     (no disposal points registered)")
		return nil
	}
	s.out.Report(report)
	return nil
}

func (s *Shell) updateStatus(ctx context.Context) error {
	for {
		input, err := s.prompt("  - Enter the ID of the point to update (or 'list' to show all points): ")
		if err != nil {
			return err
		}

		if strings.ToLower(input) == keywordList {
			points, err := s.uc.ListPoints(ctx)
			if err != nil {
				return err
			}
			s.out.Println("\n--- 📋 All registered points ---")
			s.out.PointTable(points)
			s.out.Println(strings.Repeat("-", 60))
			continue
		}

		id, err := strconv.Atoi(input)
		if err != nil {
			s.out.Println("  ❌ Error: invalid input. Please enter a numeric ID or the word 'list'.")
			return nil
		}

		pointID := types.PointID(id)
		if _, err := s.uc.GetPoint(ctx, pointID); err != nil {
			if errors.Is(err, model.ErrPointNotFound) {
				s.out.Printf("  ❌ Error: point with ID %d was not found.\n", id)
				return nil
			}
			return err
		}

		s.out.Printf("  - Available statuses: %s\n", statusList())
		statusInput, err := s.prompt("  - Enter the new status for point ID " + pointID.String() + ": ")
		if err != nil {
			return err
		}

		status, err := types.ParseStatus(statusInput)
		if err != nil {
			s.out.Println("  ❌ Error: invalid status.")
			return nil
		}

		if _, err := s.uc.UpdateStatus(ctx, pointID, status); err != nil {
			return err
		}

		s.out.Printf("\n  ✅ Status of point ID %d updated to '%s' successfully!\n", id, status)
		return nil
	}
}

func (s *Shell) register(ctx context.Context) error {
	s.out.Println("\n--- ➕ Register a new disposal point ---")

	neighborhood, err := s.prompt("  - Enter the neighborhood name: ")
	if err != nil {
		return err
	}
	if neighborhood == "" {
		s.out.Println("  ❌ Error: the neighborhood name cannot be empty.")
		return nil
	}

	severityInput, err := s.prompt("  - Enter the severity level (1 to 10): ")
	if err != nil {
		return err
	}
	severity, err := strconv.Atoi(severityInput)
	if err != nil {
		s.out.Println("  ❌ Error: severity must be a number.")
		return nil
	}
	if err := types.ValidateSeverity(severity); err != nil {
		s.out.Println("  ❌ Error: severity must be a number between 1 and 10.")
		return nil
	}

	point, err := s.uc.Register(ctx, neighborhood, severity)
	if err != nil {
		if errors.Is(err, model.ErrEmptyNeighborhood) || errors.Is(err, model.ErrInvalidSeverity) {
			s.out.Printf("  ❌ Error: %v\n", err)
			return nil
		}
		return err
	}

	s.out.Println("\n  ✅ Point registered successfully!")
	s.out.Point(*point)
	return nil
}

func (s *Shell) listByStatus(ctx context.Context) error {
	s.out.Println("\n--- 🔎 Quick filters by status ---")
	s.out.Printf("  - Available statuses: %s\n", statusList())

	input, err := s.prompt("  - Enter the status to filter by: ")
	if err != nil {
		return err
	}

	status, err := types.ParseStatus(input)
	if err != nil {
		s.out.Println("  ❌ Error: invalid status.")
		return nil
	}

	points, err := s.uc.FindByStatus(ctx, status)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		s.out.Printf("  -> No points found with status '%s'.\n", status)
		return nil
	}

	s.out.Printf("\n  -> Points with status '%s':\n", status)
	s.out.PointsWithNeighborhood(points)
	return nil
}

func statusList() string {
	names := make([]string, 0, len(types.Statuses()))
	for _, st := range types.Statuses() {
		names = append(names, st.String())
	}
	return strings.Join(names, ", ")
}
