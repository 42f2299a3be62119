package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home(cards []GameCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Scorecard</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <span class="tag">Scorecard</span>
        <h1>Track every round. Race to the finish.</h1>
        <p>Set up a game, enter round scores, and watch the standings move.</p>
        <a class="primary button" href="/create">New game</a>
      </header>
`)
		if len(cards) == 0 {
			_, _ = io.WriteString(w, `      <section class="panel empty">
        <h2>No games yet</h2>
        <p>Create your first game to get started.</p>
      </section>
`)
		}
		for _, card := range cards {
			_, _ = io.WriteString(w, `      <section class="panel game-card">
        <div>
          <h2><a href="/games/`+itoa(card.ID)+`">`+esc(card.Name)+`</a></h2>
          <p class="meta">`+itoa(card.Players)+` players &middot; `+itoa(card.Rounds)+` rounds &middot; `+esc(condLabel(card.WinCondition))+` &middot; `+esc(card.Created)+`</p>
        </div>
`)
			if card.Active {
				_, _ = io.WriteString(w, `        <span class="badge active">Active</span>
`)
			} else {
				_, _ = io.WriteString(w, `        <span class="badge finished">Finished</span>
`)
			}
			_, _ = io.WriteString(w, `        <button class="danger" data-delete="`+itoa(card.ID)+`">Delete</button>
      </section>
`)
		}
		_, _ = io.WriteString(w, `    </main>

    <script>
      document.querySelectorAll("[data-delete]").forEach((btn) => {
        btn.addEventListener("click", async () => {
          if (!confirm("Delete this game? This cannot be undone.")) {
            return;
          }
          await fetch("/api/games/" + btn.dataset.delete, { method: "DELETE" });
          window.location.reload();
        });
      });
    </script>
  </body>
</html>
`)
		return nil
	})
}
