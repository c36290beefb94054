// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/query"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// argText joins positional arguments so unquoted titles with spaces work.
func argText(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <title>",
		Short: "List titles similar to a film",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.recommender()
			if err != nil {
				return err
			}
			title := argText(args)
			recs, err := engine.RecommendDetailed(cmd.Context(), title)
			if errors.Is(err, recommend.ErrTitleNotFound) {
				return fmt.Errorf("title %q not found", title)
			}
			if err != nil {
				return err
			}

			if ctx.flags.json {
				out := models.RecommendationResponse{Query: title, Titles: make([]string, len(recs)), Results: make([]models.RecommendedFilm, len(recs))}
				for i, r := range recs {
					out.Titles[i] = r.Title
					out.Results[i] = models.RecommendedFilm{Rank: i + 1, Title: r.Title, Score: r.Score}
				}
				return writeJSON(cmd, out)
			}

			rows := make([][]string, len(recs))
			for i, r := range recs {
				rows[i] = []string{strconv.Itoa(i + 1), r.Title, formatFloat(r.Score, 4)}
			}
			writeTable(cmd, []string{"#", "Title", "Score"}, rows, []columnAlignment{alignRight, alignLeft, alignRight})
			return nil
		},
	}
}

func newScoreCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "score <title>",
		Short: "Show a film's release year and vote average",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.queryService()
			if err != nil {
				return err
			}
			title := argText(args)
			res, err := svc.Score(cmd.Context(), title)
			if err != nil {
				return err
			}
			if !res.IsFound() {
				return fmt.Errorf("title %q not found", title)
			}

			if ctx.flags.json {
				return writeJSON(cmd, res.Value)
			}
			writeKeyValues(cmd, [][2]string{
				{"Title", res.Value.Title},
				{"Release year", strconv.Itoa(res.Value.ReleaseYear)},
				{"Vote average", formatFloat(res.Value.VoteAverage, 1)},
			})
			return nil
		},
	}
}

func newVotesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "votes <title>",
		Short: "Show a film's vote count and average",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.queryService()
			if err != nil {
				return err
			}
			title := argText(args)
			res, err := svc.Votes(cmd.Context(), title)
			if err != nil {
				return err
			}
			switch res.Status {
			case query.StatusNotFound:
				return fmt.Errorf("title %q not found", title)
			case query.StatusExcluded:
				return errors.New(res.Reason)
			}

			if ctx.flags.json {
				return writeJSON(cmd, res.Value)
			}
			writeKeyValues(cmd, [][2]string{
				{"Title", res.Value.Title},
				{"Release year", strconv.Itoa(res.Value.ReleaseYear)},
				{"Votes", strconv.FormatInt(res.Value.VoteCount, 10)},
				{"Vote average", formatFloat(res.Value.VoteAverage, 1)},
			})
			return nil
		},
	}
}

func newActorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "actor <name>",
		Short: "Show an actor's film count and financial return",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.queryService()
			if err != nil {
				return err
			}
			name := argText(args)
			res, err := svc.Actor(cmd.Context(), name)
			if err != nil {
				return err
			}
			switch res.Status {
			case query.StatusNotFound:
				return fmt.Errorf("no films found for actor %q", name)
			case query.StatusExcluded:
				return errors.New(res.Reason)
			}

			if ctx.flags.json {
				return writeJSON(cmd, res.Value)
			}
			writeKeyValues(cmd, [][2]string{
				{"Actor", res.Value.Name},
				{"Films", strconv.Itoa(res.Value.Films)},
				{"Total return", formatFloat(res.Value.TotalReturn, 2)},
				{"Average return", formatFloat(res.Value.AverageReturn, 2)},
			})
			return nil
		},
	}
}

func newDirectorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "director <name>",
		Short: "List a director's films with budget, revenue and return",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.queryService()
			if err != nil {
				return err
			}
			name := argText(args)
			res, err := svc.Director(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !res.IsFound() {
				return fmt.Errorf("no films found for director %q", name)
			}

			if ctx.flags.json {
				return writeJSON(cmd, res.Value)
			}
			rows := make([][]string, len(res.Value.Films))
			for i, f := range res.Value.Films {
				released := "-"
				if d := models.FormatDate(f.ReleaseDate, f.HasReleaseDate); d != nil {
					released = *d
				}
				rows[i] = []string{
					f.Title,
					released,
					formatFloat(f.Return, 2),
					formatFloat(f.Budget, 0),
					formatFloat(f.Revenue, 0),
					formatFloat(f.Profit, 0),
				}
			}
			writeTable(cmd, []string{"Title", "Released", "Return", "Budget", "Revenue", "Profit"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight})
			return nil
		},
	}
}

func newReleasesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "releases",
		Short: "Count releases by month or weekday",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "month <month>",
		Short: "Count films released in a month (name or 1-12)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := query.ParseMonth(args[0])
			if err != nil {
				return err
			}
			svc, err := ctx.queryService()
			if err != nil {
				return err
			}
			rc, err := svc.CountByMonth(cmd.Context(), month)
			if err != nil {
				return err
			}
			return writeReleaseCount(cmd, ctx, rc)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "day <weekday>",
		Short: "Count films released on a weekday (name or 0-6, Monday first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := query.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			svc, err := ctx.queryService()
			if err != nil {
				return err
			}
			rc, err := svc.CountByWeekday(cmd.Context(), day)
			if err != nil {
				return err
			}
			return writeReleaseCount(cmd, ctx, rc)
		},
	})

	return cmd
}

func writeReleaseCount(cmd *cobra.Command, ctx *commandContext, rc query.ReleaseCount) error {
	if ctx.flags.json {
		return writeJSON(cmd, rc)
	}
	writeKeyValues(cmd, [][2]string{
		{"Period", rc.Period},
		{"Films", strconv.Itoa(rc.Count)},
	})
	return nil
}
