package task

import (
	"fmt"
	"strings"
	"text/template"
)

// Data holds everything needed to render the Task Scheduler XML.
type Data struct {
	Account     string // account whose logon triggers the launch
	Executable  string // browser executable path
	Arguments   string // kiosk-mode argument string
	Description string
}

// xmlEscape escapes a string for safe inclusion in XML text content
// and attribute values.
func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

// taskTemplate is the Task Scheduler task definition registered via
// `schtasks /Create /XML`. Settings suit a wall-mounted tablet: run on
// battery, no idle conditions, no execution time limit, restart the
// browser if the launch fails.
var taskTemplate = template.Must(template.New("task").Funcs(template.FuncMap{
	"xml": xmlEscape,
}).Parse(`<?xml version="1.0" encoding="UTF-16"?>
<Task version="1.2" xmlns="http://schemas.microsoft.com/windows/2004/02/mit/task">
  <RegistrationInfo>
    <Description>{{xml .Description}}</Description>
  </RegistrationInfo>
  <Triggers>
    <LogonTrigger>
      <Enabled>true</Enabled>
      <UserId>{{xml .Account}}</UserId>
    </LogonTrigger>
  </Triggers>
  <Principals>
    <Principal id="Author">
      <UserId>{{xml .Account}}</UserId>
      <LogonType>InteractiveToken</LogonType>
      <RunLevel>LeastPrivilege</RunLevel>
    </Principal>
  </Principals>
  <Settings>
    <MultipleInstancesPolicy>IgnoreNew</MultipleInstancesPolicy>
    <DisallowStartIfOnBatteries>false</DisallowStartIfOnBatteries>
    <StopIfGoingOnBatteries>false</StopIfGoingOnBatteries>
    <AllowHardTerminate>true</AllowHardTerminate>
    <StartWhenAvailable>true</StartWhenAvailable>
    <IdleSettings>
      <StopOnIdleEnd>false</StopOnIdleEnd>
      <RestartOnIdle>false</RestartOnIdle>
    </IdleSettings>
    <Enabled>true</Enabled>
    <ExecutionTimeLimit>PT0S</ExecutionTimeLimit>
    <RestartOnFailure>
      <Interval>PT1M</Interval>
      <Count>3</Count>
    </RestartOnFailure>
  </Settings>
  <Actions Context="Author">
    <Exec>
      <Command>{{xml .Executable}}</Command>
      <Arguments>{{xml .Arguments}}</Arguments>
    </Exec>
  </Actions>
</Task>
`))

// GenerateTaskXML renders the scheduled task definition.
func GenerateTaskXML(data Data) (string, error) {
	var b strings.Builder
	if err := taskTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render task XML: %w", err)
	}
	return b.String(), nil
}
