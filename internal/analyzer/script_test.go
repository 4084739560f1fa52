package analyzer

import (
	"reflect"
	"testing"
)

func TestAnalyzeScriptsNoBlocks(t *testing.T) {
	markup := `<html><head><title>empty</title></head><body><p>no scripts here</p></body></html>`

	got := AnalyzeScripts(markup)

	if !reflect.DeepEqual(got, ScriptMetrics{}) {
		t.Errorf("AnalyzeScripts() = %+v, want all-zero metrics", got)
	}
}

func TestAnalyzeScriptsTimeouts(t *testing.T) {
	markup := `<script>setTimeout(f,1);setTimeout(g,2);</script>`

	got := AnalyzeScripts(markup)

	if got.SetTimeoutCount != 2 {
		t.Errorf("SetTimeoutCount = %d, want 2", got.SetTimeoutCount)
	}
	if got.AnimationFrameCount != 0 {
		t.Errorf("AnimationFrameCount = %d, want 0", got.AnimationFrameCount)
	}
	if got.ScriptBlockCount != 1 {
		t.Errorf("ScriptBlockCount = %d, want 1", got.ScriptBlockCount)
	}
}

func TestAnalyzeScriptsMultipleBlocks(t *testing.T) {
	markup := `<html>
<SCRIPT type="text/javascript">
document.getElementById("a").addEventListener("click", onClick);
</SCRIPT>
<body>
<script>
const items = document.getElementsByClassName("item");
const nav = document.querySelector("#nav");
setInterval(tick, 1000);
requestAnimationFrame(step);
</script>
</body>
</html>`

	got := AnalyzeScripts(markup)

	if got.ScriptBlockCount != 2 {
		t.Errorf("ScriptBlockCount = %d, want 2", got.ScriptBlockCount)
	}
	if got.EventListenerCount != 1 {
		t.Errorf("EventListenerCount = %d, want 1", got.EventListenerCount)
	}
	if got.SetIntervalCount != 1 {
		t.Errorf("SetIntervalCount = %d, want 1", got.SetIntervalCount)
	}
	if got.AnimationFrameCount != 1 {
		t.Errorf("AnimationFrameCount = %d, want 1", got.AnimationFrameCount)
	}
	// getElementById + getElementsByClassName + querySelector
	if got.DOMQueryCount != 3 {
		t.Errorf("DOMQueryCount = %d, want 3", got.DOMQueryCount)
	}
}

func TestAnalyzeScriptsLineCounting(t *testing.T) {
	markup := "<script>\nlet a = 1;\nlet b = 2;\n</script>"

	got := AnalyzeScripts(markup)

	// Block body is "\nlet a = 1;\nlet b = 2;\n" -> 4 segments
	if got.TotalLines != 4 {
		t.Errorf("TotalLines = %d, want 4", got.TotalLines)
	}
}

func TestAnalyzeScriptsNonGreedyExtraction(t *testing.T) {
	markup := `<script>setTimeout(a,1);</script><p>between</p><script>setInterval(b,2);</script>`

	got := AnalyzeScripts(markup)

	if got.ScriptBlockCount != 2 {
		t.Errorf("ScriptBlockCount = %d, want 2 (blocks must not merge)", got.ScriptBlockCount)
	}
	if got.SetTimeoutCount != 1 || got.SetIntervalCount != 1 {
		t.Errorf("timer counts = (%d, %d), want (1, 1)", got.SetTimeoutCount, got.SetIntervalCount)
	}
}
