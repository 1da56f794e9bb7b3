package email

const subjectHotLeadAlertFmt = "Hot lead: %s scored %d"
