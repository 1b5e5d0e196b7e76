package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/mlyakhov/salaryscope/internal/config"
	"github.com/mlyakhov/salaryscope/internal/headhunter"
	"github.com/mlyakhov/salaryscope/internal/logger"
	"github.com/mlyakhov/salaryscope/internal/models"
	"github.com/mlyakhov/salaryscope/internal/stats"
	"github.com/mlyakhov/salaryscope/internal/superjob"
	"github.com/mlyakhov/salaryscope/internal/ui"
	"github.com/mlyakhov/salaryscope/internal/utils"
)

const defaultLanguages = "Python,Java,C#,PHP,Go,JavaScript,VBA,1C,SQL"

// vacancySearcher is what both API clients implement. The second int is
// the platform's location id (HH area, SuperJob town).
type vacancySearcher interface {
	SearchVacancies(ctx context.Context, text string, place, maxPages int) (*models.SearchResult, error)
}

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 SalaryScope Usage Examples 📋")

	fmt.Println("\n1. Report average programmer salaries in Moscow from both sources:")
	fmt.Println("   salaryscope")

	fmt.Println("\n2. Query HeadHunter only for a custom language set:")
	fmt.Println("   salaryscope -source hh -languages \"Go,Rust,Kotlin\"")

	fmt.Println("\n3. Saint Petersburg instead of Moscow (HH area 2, SuperJob town 14):")
	fmt.Println("   salaryscope -area 2 -town 14")

	fmt.Println("\n4. Emit the report as JSON for further processing:")
	fmt.Println("   salaryscope -json")

	fmt.Println("\n5. Show the top paying vacancies per language, two pages deep:")
	fmt.Println("   salaryscope -verbose -pages 2")

	os.Exit(0)
}

func main() {
	languagesFlag := flag.String("languages", defaultLanguages, "Comma-separated search terms")
	area := flag.Int("area", 1, "HeadHunter area id (1 = Moscow)")
	town := flag.Int("town", 4, "SuperJob town id (4 = Moscow)")
	source := flag.String("source", "", "Source to query (hh, superjob). If not specified, queries both.")
	pages := flag.Int("pages", 0, "Max result pages per language (0 = all)")
	timeout := flag.Duration("timeout", 30*time.Second, "Per-request timeout")
	jsonOut := flag.Bool("json", false, "Emit the report as JSON instead of tables")
	verbose := flag.Bool("verbose", false, "Show top paying vacancies per language")
	debug := flag.Bool("debug", false, "Enable debug logging")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(*silence || *noBanner || *jsonOut)

	if *examples {
		printExamples()
		return
	}

	log := logger.New(*debug)

	creds, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	sources, err := resolveSources(*source)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -source")
	}

	if containsSource(sources, models.SourceSuperJob) {
		if err := creds.ValidateSuperJob(); err != nil {
			log.Fatal().Err(err).Msg("SuperJob credentials missing; pass -source hh to skip it")
		}
	}

	languages := splitLanguages(*languagesFlag)
	if len(languages) == 0 {
		log.Fatal().Msg("at least one language is required")
	}

	ctx := context.Background()

	var reports []models.Report
	tops := map[models.Source]map[string][]stats.RatedVacancy{}
	failed := 0

	for _, src := range sources {
		searcher, title, place := buildSource(ctx, src, creds, *area, *town, *timeout, log)

		report, topPerLang, err := collectSource(ctx, searcher, src, title, languages, place, *pages, *verbose, *jsonOut)
		if err != nil {
			log.Warn().Err(err).Str("source", string(src)).Msg("source failed, skipping")
			failed++
			continue
		}

		reports = append(reports, *report)
		tops[src] = topPerLang
	}

	if failed == len(sources) {
		log.Fatal().Msg("every requested source failed")
	}

	if *jsonOut {
		out, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("encoding report")
		}
		fmt.Println(string(out))
		return
	}

	for _, report := range reports {
		rendered, err := ui.RenderReport(report)
		if err != nil {
			log.Fatal().Err(err).Msg("rendering report")
		}
		fmt.Print(rendered)

		if *verbose {
			printTopVacancies(report, tops[report.Source])
		}
	}
}

// collectSource fetches every language from one source sequentially and
// aggregates the rows. Any fetch error abandons the source so the other
// one can still be reported.
func collectSource(
	ctx context.Context,
	searcher vacancySearcher,
	src models.Source,
	title string,
	languages []string,
	place, maxPages int,
	verbose, quiet bool,
) (*models.Report, map[string][]stats.RatedVacancy, error) {
	report := &models.Report{Source: src, Title: title}
	topPerLang := map[string][]stats.RatedVacancy{}

	var bar *pb.ProgressBar
	if !quiet {
		bar = pb.StartNew(len(languages))
	}

	for _, language := range languages {
		result, err := searcher.SearchVacancies(ctx, language, place, maxPages)
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			return nil, nil, err
		}

		report.Stats = append(report.Stats, stats.Collect(language, src, result))
		if verbose {
			topPerLang[language] = stats.TopVacancies(result.Vacancies, 3)
		}

		if bar != nil {
			bar.Increment()
		}
	}

	if bar != nil {
		bar.Finish()
	}

	stats.SortByAverage(report.Stats)
	return report, topPerLang, nil
}

// buildSource wires one API client and returns it with its report title
// and platform location id.
func buildSource(
	ctx context.Context,
	src models.Source,
	creds *config.Credentials,
	area, town int,
	timeout time.Duration,
	log *logger.Logger,
) (vacancySearcher, string, int) {
	switch src {
	case models.SourceHeadHunter:
		client := headhunter.New(headhunter.Config{
			Token:   creds.HHClientToken,
			Timeout: timeout,
		}, log)
		return client, sourceTitle("HeadHunter", area, 1), area

	default:
		client := superjob.New(superjob.Config{
			AppKey:  creds.SJClientSecret,
			Timeout: timeout,
		}, log)
		if creds.HasSuperJobOAuth() {
			if err := client.Authenticate(ctx, creds.SJClientID, creds.SJClientSecret, creds.SJEmail, creds.SJPassword); err != nil {
				log.Warn().Err(err).Msg("SuperJob OAuth failed, continuing with app key only")
			}
		}
		return client, sourceTitle("SuperJob", town, 4), town
	}
}

// sourceTitle keeps the historical "Moscow" label for the default
// location ids and falls back to the raw id otherwise.
func sourceTitle(platform string, place, moscowID int) string {
	if place == moscowID {
		return platform + " Moscow"
	}
	return fmt.Sprintf("%s location %d", platform, place)
}

func printTopVacancies(report models.Report, topPerLang map[string][]stats.RatedVacancy) {
	for _, stat := range report.Stats {
		top := topPerLang[stat.Language]
		if len(top) == 0 {
			continue
		}

		fmt.Printf("Top paying %s vacancies (%s):\n", stat.Language, report.Title)
		for _, rated := range top {
			fmt.Printf("  %s — %s at %s\n", ui.FormatSalary(rated.Predicted), rated.Title, rated.Company)
			if snippet := utils.CleanSnippet(rated.Snippet); snippet != "" {
				fmt.Printf("    %s\n", utils.TruncateString(snippet, 120))
			}
			fmt.Printf("    %s\n", rated.URL)
		}
		fmt.Println(strings.Repeat("-", 80))
	}
}

func resolveSources(flagValue string) ([]models.Source, error) {
	switch strings.ToLower(strings.TrimSpace(flagValue)) {
	case "":
		return []models.Source{models.SourceHeadHunter, models.SourceSuperJob}, nil
	case "hh", "headhunter":
		return []models.Source{models.SourceHeadHunter}, nil
	case "superjob", "sj":
		return []models.Source{models.SourceSuperJob}, nil
	default:
		return nil, fmt.Errorf("unknown source %q, must be hh or superjob", flagValue)
	}
}

func containsSource(sources []models.Source, want models.Source) bool {
	for _, src := range sources {
		if src == want {
			return true
		}
	}
	return false
}

func splitLanguages(csv string) []string {
	var languages []string
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			languages = append(languages, trimmed)
		}
	}
	return languages
}
