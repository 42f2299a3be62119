package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// CreateView renders the draft form. Player rows, reordering, and color
// picks are handled client-side; the server only sees the final draft.
func CreateView(palette []string, maxPlayers int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		colors := make([]string, 0, len(palette))
		for _, color := range palette {
			colors = append(colors, `"`+safeColor(color)+`"`)
		}
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>New game - Scorecard</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <a class="back" href="/">&larr; Back</a>
        <h1>New game</h1>
        <p>Name the game, add at least two players, pick a win condition.</p>
      </header>

      <section class="panel">
        <label for="gameName">Game name</label>
        <input id="gameName" placeholder="Yahtzee, Monopoly, ..." autocomplete="off"/>

        <label>Win condition</label>
        <div class="choices">
          <label><input type="radio" name="winCondition" value="highest" checked/> Highest score wins</label>
          <label><input type="radio" name="winCondition" value="lowest"/> Lowest score wins</label>
        </div>

        <label>Players</label>
        <div id="players"></div>
        <button id="addPlayer" class="secondary">Add player</button>

        <button id="createGame" class="primary">Create game</button>
        <div id="createResult" class="result"></div>
      </section>
    </main>

    <script>
      const COLORS = [`+strings.Join(colors, ", ")+`];
      const MAX_PLAYERS = `+itoa(maxPlayers)+`;
      const list = document.getElementById("players");
      const rows = [];

      function render() {
        list.innerHTML = "";
        rows.forEach((row, i) => {
          const wrap = document.createElement("div");
          wrap.className = "player-row";

          const swatch = document.createElement("input");
          swatch.type = "color";
          swatch.value = row.color || COLORS[i % COLORS.length];
          swatch.addEventListener("input", () => { row.color = swatch.value; });

          const input = document.createElement("input");
          input.placeholder = "Player " + (i + 1);
          input.value = row.name;
          input.addEventListener("input", () => { row.name = input.value; });

          const up = document.createElement("button");
          up.textContent = "\u2191";
          up.disabled = i === 0;
          up.addEventListener("click", () => {
            [rows[i - 1], rows[i]] = [rows[i], rows[i - 1]];
            render();
          });

          const down = document.createElement("button");
          down.textContent = "\u2193";
          down.disabled = i === rows.length - 1;
          down.addEventListener("click", () => {
            [rows[i + 1], rows[i]] = [rows[i], rows[i + 1]];
            render();
          });

          const remove = document.createElement("button");
          remove.textContent = "\u00d7";
          remove.disabled = rows.length <= 2;
          remove.addEventListener("click", () => {
            rows.splice(i, 1);
            render();
          });

          wrap.append(swatch, input, up, down, remove);
          list.append(wrap);
        });
        document.getElementById("addPlayer").disabled = rows.length >= MAX_PLAYERS;
      }

      rows.push({ name: "", color: "" }, { name: "", color: "" });
      render();

      document.getElementById("addPlayer").addEventListener("click", () => {
        rows.push({ name: "", color: "" });
        render();
      });

      document.getElementById("createGame").addEventListener("click", async () => {
        const result = document.getElementById("createResult");
        const body = {
          name: document.getElementById("gameName").value,
          win_condition: document.querySelector("input[name=winCondition]:checked").value,
          players: rows.map((row, i) => ({ name: row.name, color: row.color || COLORS[i % COLORS.length] })),
        };
        const res = await fetch("/api/games", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify(body),
        });
        const data = await res.json();
        if (!res.ok) {
          result.textContent = data.error || "Could not create game.";
          return;
        }
        window.location.href = "/games/" + data.game_id;
      });
    </script>
  </body>
</html>
`)
		return nil
	})
}
