package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// GameView renders the race track and, for active games, the round form.
// The script holds the submit button disabled for the configured delay
// before re-rendering, so totals update after a short animation beat.
func GameView(state GamePageState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`+esc(state.Name)+` - Scorecard</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <a class="back" href="/">&larr; Back</a>
        <h1>`+esc(state.Name)+`</h1>
        <p class="meta">Round `+itoa(state.CurrentRound)+` &middot; `+esc(condLabel(state.WinCondition))+` &middot; `)
		if state.Active {
			_, _ = io.WriteString(w, `<span class="badge active">Active</span>`)
		} else {
			_, _ = io.WriteString(w, `<span class="badge finished">Finished</span>`)
		}
		_, _ = io.WriteString(w, `</p>
      </header>

      <section class="panel track">
        <div class="track-header">
          <h2>Race track</h2>
`)
		if state.Leader != nil {
			label := "Leads"
			if !state.Active {
				label = "Winner"
			} else if state.WinCondition == "lowest" {
				label = "Lowest"
			}
			_, _ = io.WriteString(w, `          <span class="leader-badge">`+esc(label)+`: <strong>`+esc(state.Leader.Name)+`</strong> (`+itoa(state.Leader.Score)+` points)</span>
`)
		}
		_, _ = io.WriteString(w, `        </div>
`)
		for _, lane := range state.Lanes {
			crown := ""
			if lane.Leading {
				crown = `<span class="crown">&#128081;</span>`
			}
			_, _ = io.WriteString(w, `        <div class="lane">
          <div class="lane-info">
            <span class="dot" style="background:`+safeColor(lane.Color)+`"></span>
            <span class="lane-name">`+esc(lane.Name)+`</span>
            <span class="lane-score">`+itoa(lane.Score)+`</span>
          </div>
          <div class="lane-strip">
            <div class="line start"></div>
            <div class="marker q1"></div><div class="marker q2"></div><div class="marker q3"></div>
            <div class="line finish"></div>
            <div class="runner" style="left:`+ftoa(lane.Position)+`%;background:`+safeColor(lane.Color)+`">`+crown+`</div>
          </div>
        </div>
`)
		}
		_, _ = io.WriteString(w, `        <div class="track-scale"><span>START</span><span>25%</span><span>50%</span><span>75%</span><span>FINISH</span></div>
      </section>
`)
		if state.Active {
			_, _ = io.WriteString(w, `      <section class="panel">
        <h2>Round `+itoa(state.CurrentRound)+` scores</h2>
`)
			for _, lane := range state.Lanes {
				_, _ = io.WriteString(w, `        <div class="score-row">
          <span class="dot" style="background:`+safeColor(lane.Color)+`"></span>
          <label>`+esc(lane.Name)+`</label>
          <input inputmode="numeric" data-player="`+esc(lane.PlayerID)+`" placeholder="0"/>
        </div>
`)
			}
			_, _ = io.WriteString(w, `        <button id="submitRound" class="primary">Record round</button>
        <button id="endGame" class="secondary">End game</button>
      </section>
`)
		}
		_, _ = io.WriteString(w, `      <section class="panel">
        <button id="deleteGame" class="danger">Delete game</button>
      </section>
    </main>

    <script>
      const GAME_ID = `+itoa(state.ID)+`;
      const SUBMIT_DELAY_MS = `+itoa(state.SubmitDelayMS)+`;

      const submitBtn = document.getElementById("submitRound");
      if (submitBtn) {
        submitBtn.addEventListener("click", async () => {
          submitBtn.disabled = true;
          const scores = {};
          document.querySelectorAll("[data-player]").forEach((input) => {
            scores[input.dataset.player] = input.value;
          });
          const res = await fetch("/api/games/" + GAME_ID + "/rounds", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({ scores }),
          });
          if (!res.ok) {
            submitBtn.disabled = false;
            return;
          }
          setTimeout(() => window.location.reload(), SUBMIT_DELAY_MS);
        });
      }

      const endBtn = document.getElementById("endGame");
      if (endBtn) {
        endBtn.addEventListener("click", async () => {
          await fetch("/api/games/" + GAME_ID + "/end", { method: "POST" });
          window.location.reload();
        });
      }

      document.getElementById("deleteGame").addEventListener("click", async () => {
        if (!confirm("Delete this game? This cannot be undone.")) {
          return;
        }
        await fetch("/api/games/" + GAME_ID, { method: "DELETE" });
        window.location.href = "/";
      });
    </script>
  </body>
</html>
`)
		return nil
	})
}
