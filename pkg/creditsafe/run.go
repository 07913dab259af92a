package creditsafe

import (
	"context"
	"errors"
	"fmt"

	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/journal"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/models"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/provider"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/report"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/workbook"
)

// Version is the connector version shown in the start-up banner.
const Version = "1.1"

// Banner is the first line of every run.
const Banner = "CreditSafe Armstrong Connector v" + Version

// Provider is the subset of the Creditsafe API a run needs.
type Provider interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	ResolveCompany(ctx context.Context, token string, req models.CompanyRequest) (*models.CompanyProfile, error)
	FetchFinancials(ctx context.Context, token string, profile models.CompanyProfile) (*models.FinancialBundle, error)
}

// ProviderFactory builds a Provider from the workbook configuration.
type ProviderFactory func(cfg models.Config) Provider

// DefaultProvider returns a REST client for the configured endpoints.
func DefaultProvider(cfg models.Config) Provider {
	return provider.New(cfg.AuthURL, cfg.CompaniesURL)
}

// Runner performs one connector run.
type Runner struct {
	Settings Settings
	Journal  *journal.Journal
	// NewProvider defaults to DefaultProvider.
	NewProvider ProviderFactory
}

// NewRunner creates a runner with the default provider.
func NewRunner(settings Settings, j *journal.Journal) *Runner {
	return &Runner{
		Settings:    settings,
		Journal:     j,
		NewProvider: DefaultProvider,
	}
}

// Run reads the input workbook, retrieves every listed company and saves the
// report workbook. It returns nil when the run finished or had nothing to do,
// and a *StageError when the run had to stop.
func (r *Runner) Run(ctx context.Context) error {
	j := r.Journal
	ctx = j.Logger().WithContext(ctx)
	j.Info(Banner)

	input := r.Settings.InputPath()
	cfg, err := workbook.ReadConfig(input)
	if err != nil {
		j.Failure(journal.TagEmpty, fmt.Sprintf("Error Reading Sheet: %v", err), fields(StageConfig, ""))
		return NewStageError(StageConfig, input, err)
	}
	companies, err := workbook.ReadCompanies(input, cfg.DefaultCountry)
	if err != nil {
		j.Failure(journal.TagEmpty, fmt.Sprintf("Error Reading Sheet: %v", err), fields(StageCompanies, ""))
		return NewStageError(StageCompanies, input, err)
	}
	if len(companies) == 0 {
		j.Status(journal.TagEmpty, "No Companies to Retrieve")
		return nil
	}

	client := r.provider(cfg)
	token, err := r.authenticate(ctx, client, cfg)
	if err != nil {
		return err
	}
	j.Info("Connected to CreditSafe")

	outPath := r.Settings.OutputPath(cfg.OutputFile)
	out, err := workbook.OpenOutput(outPath)
	if err != nil {
		j.Failure(journal.TagEmpty, fmt.Sprintf("Error Updating Sheet: %v", err), fields(StageOutput, ""))
		j.Failure(journal.TagEmpty, fmt.Sprintf("Could not access %s", cfg.OutputFile), nil)
		return NewStageError(StageOutput, outPath, err)
	}
	defer out.Close()

	writer, err := report.NewWriter(out, report.DefaultLayout())
	if err != nil {
		j.Failure(journal.TagEmpty, fmt.Sprintf("Could not access %s", cfg.OutputFile), fields(StageOutput, ""))
		return NewStageError(StageOutput, outPath, err)
	}

	for _, req := range companies {
		ok, err := r.process(ctx, client, token, writer, req)
		if err != nil {
			return err
		}
		if ok {
			j.Info(fmt.Sprintf("Successfully Updated %s with %s", cfg.OutputFile, req.Key()))
		} else {
			j.Info(fmt.Sprintf("Could not update %s with %s", cfg.OutputFile, req.Key()))
		}
	}

	if workbook.ReportCount(out) == 0 {
		j.Status(journal.TagEmpty, "Nothing Retrieved")
		return nil
	}
	if err := workbook.Save(out, outPath); err != nil {
		j.Failure(journal.TagEmpty, fmt.Sprintf("Error Updating Sheet: %v", err), fields(StageSave, ""))
		return NewStageError(StageSave, outPath, err)
	}
	j.Status(journal.TagOK, "Finished")
	return nil
}

func (r *Runner) provider(cfg models.Config) Provider {
	if r.NewProvider == nil {
		return DefaultProvider(cfg)
	}
	return r.NewProvider(cfg)
}

func (r *Runner) authenticate(ctx context.Context, client Provider, cfg models.Config) (string, error) {
	j := r.Journal
	token, err := client.Authenticate(ctx, cfg.User, cfg.Password)
	if err != nil {
		msg := fmt.Sprintf("Authentication failed: %v", err)
		var transportErr *provider.TransportError
		if errors.As(err, &transportErr) {
			msg = fmt.Sprintf("Authentication connection failed: %v", transportErr.Err)
		}
		j.Failure(journal.TagEmpty, msg, fields(StageAuth, ""))
		return "", NewStageError(StageAuth, cfg.AuthURL, err)
	}
	if token == "" {
		j.Failure(journal.TagEmpty, "Login to CreditSafe Failed", fields(StageAuth, ""))
		return "", NewStageError(StageAuth, cfg.AuthURL, ErrLoginFailed)
	}
	return token, nil
}

// process handles one company. It reports whether a tab was written; an
// error means the run must stop.
func (r *Runner) process(ctx context.Context, client Provider, token string, w *report.Writer, req models.CompanyRequest) (bool, error) {
	j := r.Journal

	profile, err := client.ResolveCompany(ctx, token, req)
	if err != nil {
		if errors.Is(err, provider.ErrPrecondition) {
			j.Failure(journal.CompanyTag(req.Key(), err.Error()), fmt.Sprintf("Company Id request failed: %v", err), fields(StageResolve, req.Key()))
			return false, NewStageError(StageResolve, req.Key(), err)
		}
		j.Failure(journal.CompanyTag(req.Key(), err.Error()), resolveMessage(req, err), fields(StageResolve, req.Key()))
		return false, nil
	}

	bundle, err := client.FetchFinancials(ctx, token, *profile)
	if err != nil {
		key := profile.Key()
		if errors.Is(err, provider.ErrPrecondition) {
			j.Failure(journal.CompanyTag(key, err.Error()), fetchMessage(err), fields(StageFetch, key))
			return false, NewStageError(StageFetch, key, err)
		}
		j.Failure(journal.CompanyTag(key, err.Error()), fetchMessage(err), fields(StageFetch, key))
		return false, nil
	}
	if bundle.Empty() {
		j.Logger().Debug().Str("company", profile.Key()).Msg("report has no financial statements")
		return false, nil
	}

	sheet, err := w.Write(*profile, bundle)
	if err != nil {
		j.Failure(journal.CompanyTag(profile.Key(), err.Error()), fmt.Sprintf("Error Updating Sheet: %v", err), fields(StageWrite, profile.Key()))
		return false, NewStageError(StageWrite, profile.Key(), err)
	}
	j.Tag(journal.CompanyTag(sheet, journal.TagOK))
	return true, nil
}

func resolveMessage(req models.CompanyRequest, err error) string {
	if errors.Is(err, provider.ErrNotFound) {
		return fmt.Sprintf("Company RegNo %s not found in country %s. %v", req.RegNo, req.Country, err)
	}
	return fmt.Sprintf("Company Id request failed: %v", err)
}

func fetchMessage(err error) string {
	var transportErr *provider.TransportError
	switch {
	case errors.Is(err, provider.ErrNotFound):
		return fmt.Sprintf("Failed to retrieve details: %v", err)
	case errors.As(err, &transportErr):
		return fmt.Sprintf("Financial Data connection failed: %v", transportErr.Err)
	default:
		return fmt.Sprintf("Parsing failed: %v", err)
	}
}

func fields(stage Stage, company string) map[string]string {
	f := map[string]string{"stage": string(stage)}
	if company != "" {
		f["company"] = company
	}
	return f
}
