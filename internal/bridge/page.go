package bridge

// demoPage is a stand-in for the real hosted-fields page: plain inputs play
// the opaque fields and report only focus/blur/validity metadata, mirroring
// what the production iframe layer emits.
const demoPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>checkout3d</title>
<style>
  html, body { margin: 0; height: 100%; background: #0a0c14; font-family: sans-serif; overflow: hidden; }
  #overlay { position: absolute; inset: 0; }
  .region { position: absolute; transition: opacity 120ms; }
  .region input, .region button {
    width: 100%; height: 100%; box-sizing: border-box;
    background: rgba(255,255,255,0.08); color: #e8ecff;
    border: 1px solid rgba(255,255,255,0.25); border-radius: 4px;
  }
  .region input:focus { outline: 2px solid #7a9aff; }
  #status { position: fixed; left: 12px; bottom: 12px; color: #9aa4c4; }
</style>
</head>
<body>
<div id="overlay"></div>
<div id="status"></div>
<script>
(function () {
  var fields = ["number", "name", "expiry", "cvv", "postal"];
  var overlay = document.getElementById("overlay");
  var status = document.getElementById("status");
  var regions = {};

  function makeRegion(name) {
    var div = document.createElement("div");
    div.className = "region";
    var el;
    if (name === "submit") {
      el = document.createElement("button");
      el.textContent = "Pay";
      el.onclick = function () { send({type: "submit"}); };
    } else {
      el = document.createElement("input");
      el.placeholder = name;
      el.onfocus = function () { send({type: "focus", field: name}); };
      el.onblur = function () { send({type: "blur", field: name}); };
      el.oninput = function () {
        send({type: "validity", field: name,
              isValid: el.value.length > 3, isPotentiallyValid: true});
      };
    }
    div.appendChild(el);
    overlay.appendChild(div);
    regions[name] = div;
    return div;
  }
  fields.concat(["submit"]).forEach(makeRegion);

  var ws = new WebSocket("ws://" + location.host + "/ws");
  function send(msg) {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(msg));
  }

  function sendResize() {
    send({type: "resize", width: window.innerWidth, height: window.innerHeight,
          dpr: window.devicePixelRatio || 1});
  }
  ws.onopen = sendResize;
  window.onresize = sendResize;

  ws.onmessage = function (evt) {
    var msg = JSON.parse(evt.data);
    if (msg.type === "layout") {
      Object.keys(msg.regions).forEach(function (name) {
        var div = regions[name];
        if (!div) return;
        var r = msg.regions[name];
        div.style.left = r.left + "px";
        div.style.top = r.top + "px";
        div.style.width = r.width + "px";
        div.style.height = r.height + "px";
        div.style.opacity = r.opacity;
        div.style.pointerEvents = r.pointerEvents ? "auto" : "none";
      });
    } else if (msg.type === "result") {
      status.textContent = msg.ok ? "Paid — " + msg.txId : msg.message;
    }
  };
})();
</script>
</body>
</html>
`
