package godmode

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
)

// The scripted strategies generate a script file, run it through an external
// interpreter, and read the names back from a temp file the script wrote.
// Both the script and the output file are removed on every exit path.

const psEnumScript = `param([string]$OutFile)
$shell = New-Object -ComObject Shell.Application
$folder = $shell.Namespace("` + godModeNamespace + `")
if ($null -eq $folder) { exit 1 }
$names = @()
foreach ($item in $folder.Items()) { $names += $item.Name }
[System.IO.File]::WriteAllLines($OutFile, $names, (New-Object System.Text.UTF8Encoding($false)))
`

const psInvokeScript = `param([string]$Name)
$shell = New-Object -ComObject Shell.Application
$folder = $shell.Namespace("` + godModeNamespace + `")
if ($null -eq $folder) { exit 1 }
foreach ($item in $folder.Items()) {
    if ($item.Name -eq $Name) {
        $item.InvokeVerb()
        exit 0
    }
}
exit 2
`

const vbsEnumScript = `Set shellApp = CreateObject("Shell.Application")
Set folder = shellApp.Namespace("` + godModeNamespace + `")
If folder Is Nothing Then WScript.Quit 1
Set fso = CreateObject("Scripting.FileSystemObject")
Set out = fso.CreateTextFile(WScript.Arguments(0), True, True)
For Each item In folder.Items
    out.WriteLine item.Name
Next
out.Close
`

const vbsInvokeScript = `target = WScript.Arguments(0)
Set shellApp = CreateObject("Shell.Application")
Set folder = shellApp.Namespace("` + godModeNamespace + `")
If folder Is Nothing Then WScript.Quit 1
For Each item In folder.Items
    If StrComp(item.Name, target, vbTextCompare) = 0 Then
        item.InvokeVerb
        WScript.Quit 0
    End If
Next
WScript.Quit 2
`

func (e *Enumerator) powershellEnumerate() ([]string, error) {
	script, out, cleanup, err := writeScript("accessmenu-*.ps1", psEnumScript)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	exe := powershellExe()
	if _, err := e.Cmd.Run(exe, "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass",
		"-File", script, out); err != nil {
		return nil, fmt.Errorf("powershell: %w", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("powershell output: %w", err)
	}
	return parseNames(string(data)), nil
}

func (e *Enumerator) powershellInvoke(item string) error {
	script, _, cleanup, err := writeScript("accessmenu-*.ps1", psInvokeScript)
	if err != nil {
		return err
	}
	defer cleanup()

	exe := powershellExe()
	if _, err := e.Cmd.Run(exe, "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass",
		"-File", script, item); err != nil {
		return fmt.Errorf("powershell: %w", err)
	}
	return nil
}

func (e *Enumerator) cscriptEnumerate() ([]string, error) {
	script, out, cleanup, err := writeScript("accessmenu-*.vbs", vbsEnumScript)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if _, err := e.Cmd.Run("cscript", "//Nologo", script, out); err != nil {
		return nil, fmt.Errorf("cscript: %w", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("cscript output: %w", err)
	}
	text, err := decodeUTF16(data)
	if err != nil {
		return nil, fmt.Errorf("cscript output: %w", err)
	}
	return parseNames(text), nil
}

func (e *Enumerator) cscriptInvoke(item string) error {
	script, _, cleanup, err := writeScript("accessmenu-*.vbs", vbsInvokeScript)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := e.Cmd.Run("cscript", "//Nologo", script, item); err != nil {
		return fmt.Errorf("cscript: %w", err)
	}
	return nil
}

// writeScript drops the script into a temp file and reserves a sibling path
// for the script's output. cleanup removes both regardless of how the
// strategy ends.
func writeScript(pattern, content string) (script, out string, cleanup func(), err error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", "", nil, fmt.Errorf("temp script: %w", err)
	}
	script = f.Name()
	out = script + ".out"
	cleanup = func() {
		_ = os.Remove(script)
		_ = os.Remove(out)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		cleanup()
		return "", "", nil, fmt.Errorf("temp script: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", "", nil, fmt.Errorf("temp script: %w", err)
	}
	return script, out, cleanup, nil
}

// decodeUTF16 turns the cscript TextStream output (UTF-16, BOM-prefixed)
// into a Go string. Plain UTF-8 input passes through untouched so a helper
// that wrote the file differently still parses.
func decodeUTF16(data []byte) (string, error) {
	if len(data) < 2 || !hasUTF16BOM(data) {
		return string(data), nil
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := dec.Bytes(data)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimPrefix(decoded, []byte("\ufeff"))), nil
}

func hasUTF16BOM(data []byte) bool {
	return (data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF)
}

// powershellExe picks the interpreter path, preferring the native System32
// copy and the Sysnative alias that bypasses WOW64 file redirection for
// 32-bit builds.
func powershellExe() string {
	systemRoot := os.Getenv("SystemRoot")
	if systemRoot == "" {
		return "powershell"
	}
	candidates := []string{
		filepath.Join(systemRoot, "Sysnative", "WindowsPowerShell", "v1.0", "powershell.exe"),
		filepath.Join(systemRoot, "System32", "WindowsPowerShell", "v1.0", "powershell.exe"),
		filepath.Join(systemRoot, "SysWOW64", "WindowsPowerShell", "v1.0", "powershell.exe"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return "powershell"
}
