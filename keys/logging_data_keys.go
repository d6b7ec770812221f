package keys

// Keys used to identify log message data items.
const Message = "message"
const DonationID = "donation_id"
const PaymentID = "payment_id"
const OrderID = "order_id"
const MembershipID = "membership_id"
const MembershipType = "membership_type"
const Email = "email"
const Amount = "amount"
const Status = "status"
const Attempt = "attempt"
const Recipient = "recipient"
const SettingKey = "setting_key"
const Request = "Request"
const Fees = "fees"
