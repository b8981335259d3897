package mail

type LeadAlertData struct {
	Name     string
	Mobile   string
	Location string
	Service  string
	Operator string
	Source   string
	Time     string
}

type Sender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
