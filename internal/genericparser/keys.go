package genericparser

// Candidate key vocabularies for the heuristic search, drawn from the
// union of the known bureau schemas plus common generic synonyms. Order
// matters: candidates are tried front to back and the first hit wins.

var firstNameKeys = []string{"First_Name", "FirstName", "GivenName"}

var lastNameKeys = []string{"Last_Name", "LastName", "Surname", "FamilyName"}

var fullNameKeys = []string{
	"Name", "FullName", "ConsumerName", "ApplicantName", "PersonName",
	"First_Name", "FirstName", "Surname", "Last_Name", "LastName",
	"GivenName", "FamilyName",
}

var phoneKeys = []string{
	"MobilePhoneNumber", "Mobile", "Phone", "MobileNumber", "ContactNumber",
	"Telephone_Number", "TelephoneNumber", "PhoneNumber", "CellPhone",
}

var panKeys = []string{
	"IncomeTaxPan", "PAN", "Income_TAX_PAN", "TaxID", "PanNumber", "PanCard",
}

var scoreKeys = []string{
	"BureauScore", "CreditScore", "Score", "ScoreValue", "CIBIL_Score",
	"ScoreNumber", "Rating",
}

var totalAccountsKeys = []string{
	"CreditAccountTotal", "TotalAccounts", "NumberOfAccounts", "AccountCount", "TotalNumberOfAccounts",
}

var activeAccountsKeys = []string{
	"CreditAccountActive", "ActiveAccounts", "OpenAccounts", "ActiveAccountCount",
}

var closedAccountsKeys = []string{
	"CreditAccountClosed", "ClosedAccounts", "ClosedAccountCount",
}

var currentBalanceKeys = []string{
	"Outstanding_Balance_All", "TotalOutstanding", "CurrentBalance", "TotalBalance", "OutstandingAmount",
}

var securedKeys = []string{
	"Outstanding_Balance_Secured", "SecuredAmount", "SecuredBalance",
}

var unsecuredKeys = []string{
	"Outstanding_Balance_UnSecured", "UnsecuredAmount", "UnsecuredBalance",
}

var enquiriesKeys = []string{
	"TotalCAPSLast7Days", "EnquiriesLast7Days", "RecentEnquiries", "Enquiries7Days",
}

var accountListKeys = []string{
	"CAIS_Account_DETAILS", "Account", "Accounts", "CreditAccount", "CreditAccounts",
	"Tradeline", "Tradelines", "AccountDetails", "LoanAccount",
}

var accountTypeKeys = []string{
	"Account_Type", "AccountType", "Type", "Product", "AccountCategory", "LoanType",
}

var bankKeys = []string{
	"Subscriber_Name", "Bank", "Lender", "Institution", "FinancialInstitution", "Issuer",
}

var accountNumberKeys = []string{
	"Account_Number", "AccountNumber", "Number", "AccountNo", "LoanAccountNumber",
}

var accountStatusKeys = []string{
	"Account_Status", "AccountStatus", "Status", "State",
}

var balanceKeys = []string{
	"Current_Balance", "CurrentBalance", "Balance", "OutstandingBalance", "PrincipalOutstanding",
}

var overdueKeys = []string{
	"Amount_Past_Due", "AmountOverdue", "PastDue", "OverdueAmount", "DelinquentAmount",
}

var creditLimitKeys = []string{
	"Credit_Limit_Amount", "CreditLimit", "Limit", "SanctionedAmount",
}

var addressKeys = []string{
	"Address", "BillingAddress", "ContactAddress", "CAIS_Holder_Address_Details",
}
