package server

import (
	"html/template"

	"github.com/yildizm/TrailMap/internal/mapview"
)

type pageData struct {
	Title string
	SVG   template.HTML
}

func pageTitle(dl *mapview.DrawList) string {
	if dl.Title != "" {
		return dl.Title
	}
	return "TrailMap"
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: #f8f9fa; }
header { padding: 12px 20px; }
#map svg { max-width: 100%; height: auto; display: block; margin: 0 auto; }
#map .marker { cursor: pointer; }
nav { text-align: center; padding: 8px; }
</style>
</head>
<body>
<header><h1>{{.Title}}</h1></header>
<div id="map">{{.SVG}}</div>
<nav>
<button data-action="retreat">Back</button>
<button data-action="advance">Advance</button>
<button data-action="close">Close</button>
</nav>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  var map = document.getElementById("map");
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "drawlist" && msg.svg) { map.innerHTML = msg.svg; }
  };
  map.addEventListener("click", function (ev) {
    var g = ev.target.closest(".marker");
    if (g) { ws.send(JSON.stringify({action: "activate", index: Number(g.dataset.index)})); }
  });
  document.querySelectorAll("nav button").forEach(function (b) {
    b.addEventListener("click", function () { ws.send(JSON.stringify({action: b.dataset.action})); });
  });
})();
</script>
</body>
</html>
`))
