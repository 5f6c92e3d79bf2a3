package notifications

import "fmt"

// Email templates are opaque HTML strings; handlers and services only pass
// them through.

// OTPVerificationEmail builds the account verification email body.
func OTPVerificationEmail(userName, otp string, validMinutes int) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; padding: 20px;">
      <h2 style="color:#ff6600;">Welcome to ScanDine, %s</h2>
      <p>We're excited to have you onboard! To complete your registration, please use the OTP below:</p>
      <div style="background:#f4f4f4; padding:10px; border-radius:8px; width:fit-content; margin:20px auto;">
        <h1 style="letter-spacing:4px; color:#333;">%s</h1>
      </div>
      <p>This OTP is valid for <b>%d minutes</b>.</p>
      <p>If you didn't request this, you can safely ignore this email.</p>
      <br>
      <p style="color:#666;">The ScanDine Team</p>
    </div>
  `, userName, otp, validMinutes)
}

// OTPVerificationSMS builds the SMS fallback for the verification passcode.
func OTPVerificationSMS(otp string, validMinutes int) string {
	return fmt.Sprintf("Your ScanDine verification code is %s. Valid for %d minutes.", otp, validMinutes)
}

// CafeCreatedEmail builds the cafe registration confirmation email body.
func CafeCreatedEmail(userName, cafeName string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; padding: 20px;">
      <h2 style="color:#ff6600;">Hi %s,</h2>
      <p>Your cafe <b>%s</b> has been successfully created on ScanDine!</p>
      <p>You can now add menu items and share your cafe's QR code with customers.</p>
      <br>
      <p style="color:#666;">The ScanDine Team</p>
    </div>
  `, userName, cafeName)
}
