/*
 * Copyright 2026 seuhd.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/uptrace/bun"

	"github.com/seuhd/crudkit/utils"
)

var bunSQLSilentMode bool

// EnableBunSQLSilent suppresses query hook output, used while migrations run.
func EnableBunSQLSilent(b bool) {
	bunSQLSilentMode = b
}

// SlowQueryHook prints queries that exceed a duration threshold. It can be
// force-enabled or disabled through the boolean environment variable named
// by fromEnv.
type SlowQueryHook struct {
	fromEnv  string
	enabled  bool
	slowTime time.Duration
	writer   io.Writer
}

var _ bun.QueryHook = (*SlowQueryHook)(nil)

// NewSlowQueryHook returns a hook reporting queries slower than slowTime to
// standard output.
func NewSlowQueryHook(slowTime time.Duration) *SlowQueryHook {
	return &SlowQueryHook{
		fromEnv:  "BUN_SLOW_QUERY_LOG",
		enabled:  true,
		slowTime: slowTime,
		writer:   os.Stdout,
	}
}

func (h *SlowQueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *SlowQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if bunSQLSilentMode || event.Err != nil {
		return
	}

	if !utils.EnvDefaultBool(h.fromEnv, h.enabled) {
		return
	}

	duration := time.Since(event.StartTime)
	if duration <= h.slowTime {
		return
	}

	_, _ = fmt.Fprintln(h.writer,
		time.Now().Format("2006-01-02 15:04:05.000"),
		color.New(color.BgYellow, color.FgBlack).Sprint(" SLOW QUERY "),
		fmt.Sprintf("%17s", duration.Round(time.Microsecond)),
		"  ", formatOperation(event),
	)
}

func formatOperation(event *bun.QueryEvent) string {
	switch event.Operation() {
	case "SELECT":
		return color.GreenString(event.Query)
	case "INSERT":
		return color.BlueString(event.Query)
	case "UPDATE":
		return color.YellowString(event.Query)
	case "DELETE":
		return color.MagentaString(event.Query)
	default:
		return color.RedString(event.Query)
	}
}
